package service

import "github.com/noah-isme/academic-records/internal/models"

// DefaultGPAScaleDivisor maps a 0-100 grade onto a 4.0 scale.
const DefaultGPAScaleDivisor = 25.0

// GPACalculator derives a credit-weighted grade point average from a transcript.
type GPACalculator struct {
	ScaleDivisor float64
}

func NewGPACalculator(divisor float64) GPACalculator {
	if divisor <= 0 {
		divisor = DefaultGPAScaleDivisor
	}
	return GPACalculator{ScaleDivisor: divisor}
}

// Calculate returns sum(grade*credits) / (sum(credits) * divisor), or 0 for an empty transcript.
func (g GPACalculator) Calculate(transcript *models.Transcript) float64 {
	var totalCredits, totalPoints float64
	for _, entry := range transcript.Entries() {
		credits := float64(entry.Credits())
		totalCredits += credits
		totalPoints += float64(entry.Grade()) * credits
	}
	if totalCredits <= 0 {
		return 0
	}
	return totalPoints / (totalCredits * g.ScaleDivisor)
}
