package main

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/evensplit/internal/models"
)

// money renders an amount with two decimal places.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// signedMoney renders a balance with an explicit sign.
func signedMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	if d.IsZero() {
		return decimal.Zero.StringFixed(2)
	}
	return d.StringFixed(2)
}

// parseAmount accepts amounts like "12.50" and rejects anything that is not a
// plain decimal number.
func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

type directory map[string]string

func newDirectory(participants []models.Participant) directory {
	d := make(directory, len(participants))
	for _, p := range participants {
		d[p.ID] = p.Name
	}
	return d
}

// name returns the participant name, or the id when it is unknown.
func (d directory) name(id string) string {
	if n, ok := d[id]; ok {
		return n
	}
	return id
}

// resolve turns a participant reference, either an id or a unique
// case-insensitive name, into an id. Unmatched references pass through so
// the ledger can reject them.
func resolve(participants []models.Participant, ref string) string {
	ref = strings.TrimSpace(ref)
	var match string
	for _, p := range participants {
		if p.ID == ref {
			return p.ID
		}
		if strings.EqualFold(p.Name, ref) {
			if match != "" {
				return ref
			}
			match = p.ID
		}
	}
	if match != "" {
		return match
	}
	return ref
}
