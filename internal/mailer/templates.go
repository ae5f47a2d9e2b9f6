package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// WelcomeEmailData holds data for sign-up confirmation emails.
type WelcomeEmailData struct {
	FullName    string
	ProjectName string
	ProjectCode string
	Department  string
	StartDate   string
	EndDate     string
}

// BuildWelcomeEmail creates the sign-up confirmation email body pair.
func BuildWelcomeEmail(data WelcomeEmailData) Email {
	return Email{
		Subject:  fmt.Sprintf("Welcome to %s", data.ProjectName),
		TextBody: buildWelcomeText(data),
		HTMLBody: buildWelcomeHTML(data),
	}
}

func buildWelcomeText(data WelcomeEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.FullName))
	buf.WriteString(fmt.Sprintf("You are signed up for %s (project code %s).\n\n", data.ProjectName, data.ProjectCode))
	if data.Department != "" {
		buf.WriteString(fmt.Sprintf("Department: %s\n", data.Department))
	}
	buf.WriteString(fmt.Sprintf("Shooting: %s to %s\n\n", data.StartDate, data.EndDate))
	buf.WriteString("You will receive a call sheet by email before each of your shoot days.\n")
	return buf.String()
}

func buildWelcomeHTML(data WelcomeEmailData) string {
	tmpl := template.Must(template.New("welcome").Parse(welcomeHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const welcomeHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Welcome</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #1f2937;">{{.ProjectName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Hi {{.FullName}}, you are on the crew.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 14px; color: #374151;">
                <tr>
                  <td style="padding: 6px 0; color: #6b7280;">Project code</td>
                  <td style="padding: 6px 0; text-align: right; font-weight: 600; font-family: 'Courier New', monospace;">{{.ProjectCode}}</td>
                </tr>
                {{if .Department}}
                <tr>
                  <td style="padding: 6px 0; color: #6b7280;">Department</td>
                  <td style="padding: 6px 0; text-align: right; font-weight: 600;">{{.Department}}</td>
                </tr>
                {{end}}
                <tr>
                  <td style="padding: 6px 0; color: #6b7280;">Shooting</td>
                  <td style="padding: 6px 0; text-align: right; font-weight: 600;">{{.StartDate}} to {{.EndDate}}</td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; background-color: #f9fafb; border-top: 1px solid #e5e7eb; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af; text-align: center;">
                You will receive a call sheet by email before each of your shoot days.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

// CallSheetEmailData holds data for call-sheet distribution emails.
type CallSheetEmailData struct {
	ProjectName  string
	ShootDate    string // e.g., "2026-09-14"
	CallTime     string // the recipient's personal call time
	GeneralCall  string
	LocationName string
	Department   string
	FullName     string
}

// BuildCallSheetEmail creates the call-sheet email body pair. The PDF is
// attached by the caller.
func BuildCallSheetEmail(data CallSheetEmailData) Email {
	return Email{
		Subject:  fmt.Sprintf("Call Sheet: %s (%s)", data.ProjectName, data.ShootDate),
		TextBody: buildCallSheetText(data),
		HTMLBody: buildCallSheetHTML(data),
	}
}

func buildCallSheetText(data CallSheetEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.FullName))
	buf.WriteString(fmt.Sprintf("The call sheet for %s on %s is attached.\n\n", data.ProjectName, data.ShootDate))
	buf.WriteString(fmt.Sprintf("Your call time: %s\n", data.CallTime))
	buf.WriteString(fmt.Sprintf("General call: %s\n", data.GeneralCall))
	if data.LocationName != "" {
		buf.WriteString(fmt.Sprintf("Location: %s\n", data.LocationName))
	}
	if data.Department != "" {
		buf.WriteString(fmt.Sprintf("Department: %s\n", data.Department))
	}
	buf.WriteString("\nPlease review the attached PDF for the full schedule and notes.\n")
	return buf.String()
}

func buildCallSheetHTML(data CallSheetEmailData) string {
	tmpl := template.Must(template.New("callsheet").Parse(callSheetHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const callSheetHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Call Sheet</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #1f2937;">{{.ProjectName}}</h1>
              <p style="margin: 8px 0 0; font-size: 14px; color: #6b7280;">Call Sheet for {{.ShootDate}}</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Hi {{.FullName}}, the call sheet for {{.ShootDate}} is attached.
              </p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 24px; text-align: center; margin-bottom: 24px;">
                <p style="margin: 0 0 4px; font-size: 13px; color: #6b7280;">Your call time</p>
                <span style="font-size: 32px; font-weight: 700; color: #1f2937; font-family: 'Courier New', monospace;">{{.CallTime}}</span>
              </div>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 14px; color: #374151;">
                <tr>
                  <td style="padding: 6px 0; color: #6b7280;">General call</td>
                  <td style="padding: 6px 0; text-align: right; font-weight: 600;">{{.GeneralCall}}</td>
                </tr>
                {{if .LocationName}}
                <tr>
                  <td style="padding: 6px 0; color: #6b7280;">Location</td>
                  <td style="padding: 6px 0; text-align: right; font-weight: 600;">{{.LocationName}}</td>
                </tr>
                {{end}}
                {{if .Department}}
                <tr>
                  <td style="padding: 6px 0; color: #6b7280;">Department</td>
                  <td style="padding: 6px 0; text-align: right; font-weight: 600;">{{.Department}}</td>
                </tr>
                {{end}}
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; background-color: #f9fafb; border-top: 1px solid #e5e7eb; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af; text-align: center;">
                Please review the attached PDF for the full schedule and notes.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
