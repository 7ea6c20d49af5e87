package utils

import "github.com/google/uuid"

// UUIDGenerator hands out derivation job identifiers. Version 7 UUIDs sort
// by creation time, which keeps log lines of consecutive jobs in order.
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
