package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceListContains(t *testing.T) {
	services := ServiceList{ServiceConsultation, ServiceSpa}

	assert.True(t, services.Contains(ServiceConsultation))
	assert.True(t, services.Contains(ServiceSpa))
	assert.False(t, services.Contains(ServiceGrooming))
	assert.False(t, ServiceList(nil).Contains(ServiceConsultation))
}

func TestBranchCanBook(t *testing.T) {
	branch := &Branch{
		IsActive: true,
		Services: ServiceList{ServiceConsultation, ServiceGrooming},
	}

	assert.True(t, branch.CanBook(ServiceConsultation))
	assert.True(t, branch.CanBook(ServiceGrooming))
	assert.False(t, branch.CanBook(ServiceSpa))

	// inactive branches accept nothing
	branch.IsActive = false
	assert.False(t, branch.CanBook(ServiceConsultation))
}

func TestServiceListRoundTrip(t *testing.T) {
	services := ServiceList{ServiceShop, ServiceEmergency}

	value, err := services.Value()
	require.NoError(t, err)

	var decoded ServiceList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, services, decoded)

	var empty ServiceList
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var fromNil ServiceList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)
}
