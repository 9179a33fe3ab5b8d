package utils

import "github.com/google/uuid"

// UUIDGenerator issues trace IDs. Version 7 values sort by creation time;
// a random version 4 value is used if the clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
