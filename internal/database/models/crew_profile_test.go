package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, _ := time.Parse(DateOnly, value)
	return t
}

func TestHasValidInsurance(t *testing.T) {
	shootDate := date("2026-09-10")

	t.Run("uninsured profile", func(t *testing.T) {
		profile := &CrewProfile{HasInsurance: false}
		assert.False(t, profile.HasValidInsurance(shootDate))
	})

	t.Run("insured without expiry counts as non-expiring", func(t *testing.T) {
		profile := &CrewProfile{HasInsurance: true}
		assert.True(t, profile.HasValidInsurance(shootDate))
	})

	t.Run("expiry on the shoot date is still valid", func(t *testing.T) {
		expiry := date("2026-09-10")
		profile := &CrewProfile{HasInsurance: true, InsuranceExpiry: &expiry}
		assert.True(t, profile.HasValidInsurance(shootDate))
	})

	t.Run("expiry before the shoot date is invalid", func(t *testing.T) {
		expiry := date("2026-09-09")
		profile := &CrewProfile{HasInsurance: true, InsuranceExpiry: &expiry}
		assert.False(t, profile.HasValidInsurance(shootDate))
	})

	t.Run("time-of-day on the shoot date is ignored", func(t *testing.T) {
		expiry := date("2026-09-10")
		profile := &CrewProfile{HasInsurance: true, InsuranceExpiry: &expiry}
		lateInDay := time.Date(2026, 9, 10, 23, 45, 0, 0, time.UTC)
		assert.True(t, profile.HasValidInsurance(lateInDay))
	})
}

func TestIsUnavailableOn(t *testing.T) {
	profile := &CrewProfile{
		UnavailableDates: StringList([]string{"2026-09-05", "2026-09-12"}),
	}

	assert.True(t, profile.IsUnavailableOn(date("2026-09-05")))
	assert.True(t, profile.IsUnavailableOn(date("2026-09-12")))
	assert.False(t, profile.IsUnavailableOn(date("2026-09-06")))

	t.Run("empty set", func(t *testing.T) {
		empty := &CrewProfile{}
		assert.False(t, empty.IsUnavailableOn(date("2026-09-05")))
	})
}

func TestComputeMissingInfo(t *testing.T) {
	onDate := date("2026-09-10")
	expiry := date("2027-12-31")

	complete := func() *CrewProfile {
		return &CrewProfile{
			EmergencyContactName:  "Dana Reyes",
			EmergencyContactPhone: "+1-555-0142",
			DietaryRestrictions:   StringList([]string{"none"}),
			HasInsurance:          true,
			InsuranceExpiry:       &expiry,
		}
	}

	t.Run("complete profile has no flags", func(t *testing.T) {
		flags := complete().ComputeMissingInfo(onDate)
		assert.False(t, flags.MissingEmergency)
		assert.False(t, flags.MissingDietary)
		assert.False(t, flags.MissingInsurance)
		assert.False(t, flags.Any())
	})

	t.Run("missing emergency name", func(t *testing.T) {
		profile := complete()
		profile.EmergencyContactName = ""
		flags := profile.ComputeMissingInfo(onDate)
		assert.True(t, flags.MissingEmergency)
		assert.True(t, flags.Any())
	})

	t.Run("missing emergency phone", func(t *testing.T) {
		profile := complete()
		profile.EmergencyContactPhone = ""
		flags := profile.ComputeMissingInfo(onDate)
		assert.True(t, flags.MissingEmergency)
	})

	t.Run("empty dietary list", func(t *testing.T) {
		profile := complete()
		profile.DietaryRestrictions = StringList(nil)
		flags := profile.ComputeMissingInfo(onDate)
		assert.True(t, flags.MissingDietary)
		assert.False(t, flags.MissingEmergency)
	})

	t.Run("expired insurance", func(t *testing.T) {
		profile := complete()
		past := date("2026-01-01")
		profile.InsuranceExpiry = &past
		flags := profile.ComputeMissingInfo(onDate)
		assert.True(t, flags.MissingInsurance)
	})

	t.Run("no insurance at all", func(t *testing.T) {
		profile := complete()
		profile.HasInsurance = false
		profile.InsuranceExpiry = nil
		flags := profile.ComputeMissingInfo(onDate)
		assert.True(t, flags.MissingInsurance)
	})
}

func TestStringListRoundTrip(t *testing.T) {
	t.Run("values survive encode and decode", func(t *testing.T) {
		raw := StringList([]string{"vegetarian", "nut allergy"})
		assert.Equal(t, []string{"vegetarian", "nut allergy"}, decodeStringList(raw))
	})

	t.Run("nil input encodes as empty array", func(t *testing.T) {
		raw := StringList(nil)
		assert.Equal(t, `[]`, string(raw))
		assert.Nil(t, decodeStringList(raw))
	})

	t.Run("empty column decodes to nil", func(t *testing.T) {
		assert.Nil(t, decodeStringList(nil))
	})
}

func TestProjectContainsDate(t *testing.T) {
	project := &Project{
		StartDate: date("2026-09-01"),
		EndDate:   date("2026-09-30"),
	}

	assert.True(t, project.ContainsDate(date("2026-09-01")))
	assert.True(t, project.ContainsDate(date("2026-09-30")))
	assert.True(t, project.ContainsDate(date("2026-09-15")))
	assert.False(t, project.ContainsDate(date("2026-08-31")))
	assert.False(t, project.ContainsDate(date("2026-10-01")))
}

func TestEnumValidity(t *testing.T) {
	t.Run("project statuses", func(t *testing.T) {
		for _, s := range []ProjectStatus{ProjectStatusPlanning, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled} {
			assert.True(t, s.IsValid(), string(s))
		}
		assert.False(t, ProjectStatus("archived").IsValid())
		assert.False(t, ProjectStatus("").IsValid())
	})

	t.Run("conflict types", func(t *testing.T) {
		for _, c := range []ConflictType{ConflictTypeDoubleBooked, ConflictTypeUnavailable, ConflictTypeMissingInfo} {
			assert.True(t, c.IsValid(), string(c))
		}
		assert.False(t, ConflictType("overlap").IsValid())
	})
}
