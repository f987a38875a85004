package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un enregistrement créé inactif doit le rester : pas de valeur par défaut
// côté base qui écraserait le false à l'insertion.
func TestConducteurCreeInactif(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&Conducteur{Nom: "Parti", Actif: false}).Error)
	require.NoError(t, db.Create(&Conducteur{Nom: "Diallo", Actif: true}).Error)

	var parti Conducteur
	require.NoError(t, db.Where("nom = ?", "Parti").First(&parti).Error)
	assert.False(t, parti.Actif)

	var diallo Conducteur
	require.NoError(t, db.Where("nom = ?", "Diallo").First(&diallo).Error)
	assert.True(t, diallo.Actif)
}

func TestUtilisateurCreeInactif(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&Utilisateur{Username: "parti", Password: "x", Actif: false}).Error)

	var u Utilisateur
	require.NoError(t, db.Where("username = ?", "parti").First(&u).Error)
	assert.False(t, u.Actif)
}
