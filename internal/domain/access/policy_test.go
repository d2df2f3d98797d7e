package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/access"
)

func TestEnsureOwner(t *testing.T) {
	assert.NoError(t, access.EnsureOwner("u1", "u1"))
	assert.ErrorIs(t, access.EnsureOwner("u1", "u2"), domain.ErrForbidden)
	assert.ErrorIs(t, access.EnsureOwner("u1", ""), domain.ErrUnauthenticated)
}

func TestRequireCaller(t *testing.T) {
	assert.NoError(t, access.RequireCaller("u1"))
	assert.ErrorIs(t, access.RequireCaller(""), domain.ErrUnauthenticated)
}
