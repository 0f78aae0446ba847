package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID produces short run identifiers for report generation runs.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
