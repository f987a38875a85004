package services

import "errors"

// Erreurs sentinelles remontées aux handlers (errors.Is).
var (
	// ErrForbidden — rôle insuffisant. Vérifié avant toute requête.
	ErrForbidden = errors.New("accès réservé aux gestionnaires ou administrateurs")
	// ErrNotFound — entité absente ou hors du périmètre visible de l'appelant.
	ErrNotFound = errors.New("enregistrement introuvable")
)
