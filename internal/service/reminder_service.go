package service

import (
	"fmt"
	"time"

	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReminderService notifies clients about tomorrow's appointments.
// It runs on a cron schedule configured in the environment.
type ReminderService struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	notificationRepo repository.NotificationRepository
	cron             *cron.Cron
}

func NewReminderService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notificationRepo repository.NotificationRepository,
) *ReminderService {
	return &ReminderService{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		cron:             cron.New(),
	}
}

// Start schedules the daily job. Returns an error if the cron spec is invalid.
func (s *ReminderService) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.SendDailyReminders); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Reminder job scheduled: %s", schedule)
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// SendDailyReminders creates one reminder notification per pending or
// confirmed appointment scheduled for tomorrow.
func (s *ReminderService) SendDailyReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1)

	appointments, err := s.appointmentRepo.FindBlockingByDate(s.db, tomorrow)
	if err != nil {
		s.log.Errorf("Reminder job: failed to load appointments: %+v", err)
		return
	}

	sent := 0
	for i := range appointments {
		appt := appointments[i]
		apptID := appt.ID
		notification := &entity.Notification{
			UserID: appt.ClientID,
			Title:  "Appointment reminder",
			Message: fmt.Sprintf("Reminder: %s has an appointment tomorrow at %s.",
				appt.Pet.Name, appt.Time),
			Type:          entity.NotificationTypeReminder,
			AppointmentID: &apptID,
		}
		if err := s.notificationRepo.Create(s.db, notification); err != nil {
			s.log.Warnf("Reminder job: failed to notify client %s: %+v", appt.ClientID, err)
			continue
		}
		sent++
	}

	s.log.Infof("Reminder job: %d reminders sent for %s", sent, tomorrow.Format("2006-01-02"))
}
