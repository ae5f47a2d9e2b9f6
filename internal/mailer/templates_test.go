package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWelcomeEmail(t *testing.T) {
	email := BuildWelcomeEmail(WelcomeEmailData{
		FullName:    "Morgan Sato",
		ProjectName: "Midnight Harbor",
		ProjectCode: "XK7P2Q",
		Department:  "Camera",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-30",
	})

	assert.Equal(t, "Welcome to Midnight Harbor", email.Subject)
	assert.Contains(t, email.TextBody, "Hi Morgan Sato")
	assert.Contains(t, email.TextBody, "XK7P2Q")
	assert.Contains(t, email.TextBody, "Department: Camera")
	assert.Contains(t, email.TextBody, "2026-09-01 to 2026-09-30")
	assert.Contains(t, email.HTMLBody, "Morgan Sato")
	assert.Contains(t, email.HTMLBody, "XK7P2Q")
	assert.Contains(t, email.HTMLBody, "<!DOCTYPE html>")
}

func TestBuildWelcomeEmail_NoDepartment(t *testing.T) {
	email := BuildWelcomeEmail(WelcomeEmailData{
		FullName:    "Morgan Sato",
		ProjectName: "Midnight Harbor",
		ProjectCode: "XK7P2Q",
	})

	assert.NotContains(t, email.TextBody, "Department:")
}

func TestBuildCallSheetEmail(t *testing.T) {
	email := BuildCallSheetEmail(CallSheetEmailData{
		ProjectName:  "Midnight Harbor",
		ShootDate:    "2026-09-14",
		CallTime:     "06:15",
		GeneralCall:  "06:30",
		LocationName: "Pier 4",
		Department:   "Grip",
		FullName:     "Morgan Sato",
	})

	assert.Equal(t, "Call Sheet: Midnight Harbor (2026-09-14)", email.Subject)
	assert.Contains(t, email.TextBody, "Your call time: 06:15")
	assert.Contains(t, email.TextBody, "General call: 06:30")
	assert.Contains(t, email.TextBody, "Location: Pier 4")
	assert.Contains(t, email.TextBody, "Department: Grip")
	assert.Contains(t, email.HTMLBody, "Midnight Harbor")
	assert.Contains(t, email.HTMLBody, "06:15")
}

func TestBuildCallSheetEmail_OptionalFieldsOmitted(t *testing.T) {
	email := BuildCallSheetEmail(CallSheetEmailData{
		ProjectName: "Midnight Harbor",
		ShootDate:   "2026-09-14",
		CallTime:    "06:15",
		GeneralCall: "06:30",
		FullName:    "Morgan Sato",
	})

	assert.NotContains(t, email.TextBody, "Location:")
	assert.NotContains(t, email.TextBody, "Department:")
}

func TestMailerDisabledWithoutHost(t *testing.T) {
	m := New("", 587, "", "", "callsheets@filmflow.local")
	assert.False(t, m.Enabled())

	err := m.Send(Email{To: "crew@example.com", Subject: "x", TextBody: "y"})
	assert.Error(t, err)
}

func TestMailerEnabledWithHost(t *testing.T) {
	m := New("smtp.example.com", 587, "user", "pass", "callsheets@filmflow.local")
	assert.True(t, m.Enabled())
}
