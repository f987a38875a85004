package services

import (
	"testing"

	"flotte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	t.Run("non authentifié", func(t *testing.T) {
		assert.Equal(t, "", ResolveRole(nil))
	})

	t.Run("superuser prime sur le profil", func(t *testing.T) {
		u := &models.Utilisateur{
			IsSuperuser: true,
			Profil:      &models.ProfilUtilisateur{Role: models.RoleUser},
		}
		assert.Equal(t, models.RoleAdmin, ResolveRole(u))
	})

	t.Run("profil présent", func(t *testing.T) {
		u := &models.Utilisateur{Profil: &models.ProfilUtilisateur{Role: models.RoleManager}}
		assert.Equal(t, models.RoleManager, ResolveRole(u))
	})

	t.Run("sans profil, rôle user par défaut", func(t *testing.T) {
		assert.Equal(t, models.RoleUser, ResolveRole(&models.Utilisateur{}))
	})
}

func TestPrincipalPredicates(t *testing.T) {
	assert.False(t, Principal{}.IsAuthenticated())
	assert.True(t, userPrincipal(3).IsAuthenticated())
	assert.False(t, userPrincipal(3).IsManagerOrAdmin())
	assert.True(t, managerPrincipal().IsManagerOrAdmin())
	assert.False(t, managerPrincipal().IsAdmin())
	assert.True(t, adminPrincipal().IsAdmin())
	assert.True(t, adminPrincipal().IsManagerOrAdmin())
}

func TestResolvePrincipal(t *testing.T) {
	db := setupTestDB(t)

	manager := &models.Utilisateur{Username: "manager", Password: "x"}
	require.NoError(t, db.Create(manager).Error)
	require.NoError(t, db.Create(&models.ProfilUtilisateur{UserID: manager.ID, Role: models.RoleManager}).Error)

	sansProfil := &models.Utilisateur{Username: "simple", Password: "x"}
	require.NoError(t, db.Create(sansProfil).Error)

	super := &models.Utilisateur{Username: "root", Password: "x", IsSuperuser: true}
	require.NoError(t, db.Create(super).Error)

	p, err := ResolvePrincipal(manager.ID)
	require.NoError(t, err)
	assert.Equal(t, Principal{UserID: manager.ID, Role: models.RoleManager}, p)

	p, err = ResolvePrincipal(sansProfil.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, p.Role)

	p, err = ResolvePrincipal(super.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, p.Role)

	_, err = ResolvePrincipal(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
