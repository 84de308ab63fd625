package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCompanyMembership(t *testing.T) {
	adminID := uuid.New()
	memberID := uuid.New()

	company := &Company{
		Admins: pq.StringArray{adminID.String()},
		Users:  pq.StringArray{adminID.String(), memberID.String()},
	}

	assert.True(t, company.HasUser(adminID))
	assert.True(t, company.HasUser(memberID))
	assert.True(t, company.HasAdmin(adminID))
	assert.False(t, company.HasAdmin(memberID))
	assert.False(t, company.HasUser(uuid.New()))
}
