package mailer

import (
	"html/template"
	"strings"
)

// ContactEmailData fills the owner notification for a contact message.
type ContactEmailData struct {
	Name        string
	Email       string
	Company     string
	Subject     string
	Message     string
	SubmittedAt string
}

// RequestEmailData fills the owner notification for a catalogue or
// brochure request.
type RequestEmailData struct {
	Name          string
	CompanyName   string
	Email         string
	ContactNumber string
	City          string
	State         string
	Country       string
	ProductName   string
	URL           string
	VisitorIP     string
}

// AckEmailData fills the requester-facing acknowledgement. The catalogue
// and brochure flows use the same layout with different branding.
type AckEmailData struct {
	Name          string
	LogoURL       string
	LogoAlt       string
	Accent        string
	Intro         string
	DocumentKind  string
	DownloadURL   string
	DownloadLabel string
	CompanyLine   string
	SignOff       string
}

var contactOwnerTmpl = template.Must(template.New("contactOwner").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">
    New Contact Form Submission
  </h2>

  <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Contact Details:</h3>

    <div style="margin-bottom: 15px;">
      <strong style="color: #374151;">Name:</strong>
      <span style="color: #6b7280; margin-left: 10px;">{{.Name}}</span>
    </div>

    <div style="margin-bottom: 15px;">
      <strong style="color: #374151;">Email:</strong>
      <span style="color: #6b7280; margin-left: 10px;">{{.Email}}</span>
    </div>

    {{if .Company}}
    <div style="margin-bottom: 15px;">
      <strong style="color: #374151;">Company:</strong>
      <span style="color: #6b7280; margin-left: 10px;">{{.Company}}</span>
    </div>
    {{end}}

    {{if .Subject}}
    <div style="margin-bottom: 15px;">
      <strong style="color: #374151;">Subject/Address:</strong>
      <span style="color: #6b7280; margin-left: 10px;">{{.Subject}}</span>
    </div>
    {{end}}

    <div style="margin-bottom: 15px;">
      <strong style="color: #374151;">Message:</strong>
      <div style="color: #6b7280; margin-top: 10px; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</div>
    </div>
  </div>

  <div style="background-color: #fef2f2; padding: 15px; border-radius: 8px; border-left: 4px solid #dc2626;">
    <p style="margin: 0; color: #991b1b; font-size: 14px;">
      <strong>Note:</strong> This email was sent from your website's contact form.
      Please respond directly to {{.Email}} to get in touch with the sender.
    </p>
  </div>

  <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e5e7eb; text-align: center; color: #9ca3af; font-size: 12px;">
    Sent from your website contact form on {{.SubmittedAt}}
  </div>
</div>
`))

var requestOwnerTmpl = template.Must(template.New("requestOwner").Parse(`
<div style="font-family: Arial, sans-serif; border: 2px dashed #000; padding: 20px; max-width: 600px; margin: auto; background-color: #F7F7F7;">
  <table style="width: 100%; border-collapse: collapse; font-size: 14px;">
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Name:</td>
      <td style="padding: 8px;">{{.Name}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Company Name:</td>
      <td style="padding: 8px;">{{.CompanyName}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Email:</td>
      <td style="padding: 8px;">{{.Email}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Contact No:</td>
      <td style="padding: 8px;">{{.ContactNumber}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">City:</td>
      <td style="padding: 8px;">{{.City}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">State:</td>
      <td style="padding: 8px;">{{.State}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Country:</td>
      <td style="padding: 8px;">{{.Country}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">URL:</td>
      <td style="padding: 8px;"><a href="{{.URL}}" style="color: #0066cc; text-decoration: none;">{{.URL}}</a></td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Product:</td>
      <td style="padding: 8px;">{{.ProductName}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; font-weight: bold; color: #000;">Visitor IP:</td>
      <td style="padding: 8px;">{{.VisitorIP}}</td>
    </tr>
  </table>
</div>
`))

var acknowledgementTmpl = template.Must(template.New("acknowledgement").Parse(`
<div style="font-family: Arial, sans-serif; border: 2px dashed #000; padding: 20px; max-width: 600px; margin: auto;">
  <div style="text-align: center; margin-bottom: 30px;">
    <img src="{{.LogoURL}}"
         alt="{{.LogoAlt}}"
         style="max-width: 200px; height: auto; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
  </div>

  <h2 style="text-align: center; font-size: 24px; margin-bottom: 20px; color: {{.Accent}};">Thank you!</h2>

  <p style="margin-bottom: 15px;">Dear {{.Name}},</p>

  <p style="margin-bottom: 5px;">{{.Intro}}</p>
  <p style="margin-bottom: 15px;">Thank you for your interest in our packaging solutions.</p>

  <p style="margin-bottom: 15px;">Please click the link below to download your requested {{.DocumentKind}}:</p>

  <div style="text-align: center; margin: 25px 0;">
    <a href="{{.DownloadURL}}"
       style="background-color: {{.Accent}}; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold; display: inline-block;">
      {{.DownloadLabel}}
    </a>
  </div>

  <p style="margin-bottom: 5px;">{{.SignOff}}</p>
  <p style="margin-bottom: 5px; font-weight: bold;">{{.CompanyLine}}</p>

  <p style="margin-top: 30px; font-size: 12px; color: #666;">This is an auto generated email. PLEASE DO NOT REPLY directly to this email.</p>
</div>
`))

// RenderContactOwnerEmail renders the owner notification for a contact
// message. Form input is escaped by the template engine.
func RenderContactOwnerEmail(data ContactEmailData) (string, error) {
	var b strings.Builder
	if err := contactOwnerTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderRequestOwnerEmail renders the owner notification for a catalogue
// or brochure request.
func RenderRequestOwnerEmail(data RequestEmailData) (string, error) {
	var b strings.Builder
	if err := requestOwnerTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderAcknowledgementEmail renders the requester-facing thank-you email
// with the static download link.
func RenderAcknowledgementEmail(data AckEmailData) (string, error) {
	var b strings.Builder
	if err := acknowledgementTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
