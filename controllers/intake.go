package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jeil-marcom/site_end/config"
	"github.com/jeil-marcom/site_end/mailer"
	"github.com/jeil-marcom/site_end/models"
	"github.com/jeil-marcom/site_end/utils"
)

// IntakeController handles the three public form endpoints: validate the
// payload, persist the submission, then send the notification emails. The
// store write always happens before any email dispatch, and a write that
// succeeded is never rolled back when a send fails afterwards.
type IntakeController struct {
	contacts   ContactStore
	catalogues CatalogueStore
	sender     mailer.Sender
	cfg        *config.Config
}

// NewIntakeController wires the intake endpoints.
func NewIntakeController(contacts ContactStore, catalogues CatalogueStore, sender mailer.Sender, cfg *config.Config) *IntakeController {
	return &IntakeController{
		contacts:   contacts,
		catalogues: catalogues,
		sender:     sender,
		cfg:        cfg,
	}
}

// SubmitContact handles POST /api/contact.
func (ic *IntakeController) SubmitContact(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "Name, email, and message are required", http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	visitorIP := utils.VisitorIP(c)

	submission, err := ic.contacts.Create(ctx, input, visitorIP)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"email": input.Email}, "failed to store contact submission")
		utils.ErrorResponse(c, "Failed to send email. Please try again later.", http.StatusInternalServerError)
		return
	}

	subject := input.Subject
	if subject == "" {
		subject = "Contact Request"
	}

	html, err := mailer.RenderContactOwnerEmail(mailer.ContactEmailData{
		Name:        input.Name,
		Email:       input.Email,
		Company:     input.Company,
		Subject:     input.Subject,
		Message:     input.Message,
		SubmittedAt: submission.CreatedAt.Format(time.RFC1123),
	})
	if err == nil {
		err = ic.sender.Send(ctx, mailer.Message{
			From:     ic.cfg.MailFrom,
			To:       ic.cfg.OwnerEmails,
			Subject:  "New Contact Form Submission: " + subject,
			HTMLBody: html,
		})
	}
	if err != nil {
		// The submission stays persisted; only the notification failed.
		utils.LogError(err, map[string]interface{}{
			"submissionId": submission.ID.Hex(),
		}, "contact notification email failed")
		utils.ErrorResponse(c, "Failed to send email. Please try again later.", http.StatusInternalServerError)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"submissionId": submission.ID.Hex(),
		"visitorIP":    visitorIP,
	}, "contact submission stored and notified")

	utils.SuccessResponse(c, nil, "Email sent successfully")
}

// requestVariant carries the wording and branding differences between the
// catalogue-download and brochure-request flows.
type requestVariant struct {
	ownerSubjectPrefix string
	ackSubject         string
	ack                mailer.AckEmailData
	successMessage     string
	failureMessage     string
	logLabel           string
}

// DownloadCatalogue handles POST /api/download-catalogue.
func (ic *IntakeController) DownloadCatalogue(c *gin.Context) {
	ic.handleRequestIntake(c, requestVariant{
		ownerSubjectPrefix: "Download Catalogue Request",
		ackSubject:         "Thank you for your interest | Jagannath Extrusion India Ltd.",
		ack: mailer.AckEmailData{
			LogoURL:       "https://jeil.in/assets/cropped-jeil-logo.png",
			LogoAlt:       "Jagannath Extrusion India Ltd.",
			Accent:        "#dc2626",
			Intro:         "Awesome!",
			DocumentKind:  "catalogue",
			DownloadURL:   ic.cfg.CatalogueURL,
			DownloadLabel: "📥 Download Product Catalogue",
			CompanyLine:   "Jagannath Extrusion India Ltd.",
			SignOff:       "Regards,",
		},
		successMessage: "Request received. Your catalogue will be emailed shortly.",
		failureMessage: "Failed to send catalogue. Please try again later.",
		logLabel:       "catalogue",
	})
}

// RequestBrochure handles POST /api/request-brochure.
func (ic *IntakeController) RequestBrochure(c *gin.Context) {
	ic.handleRequestIntake(c, requestVariant{
		ownerSubjectPrefix: "Brochure Request",
		ackSubject:         "Thank you for your interest | J P Extrusiontech Private Limited",
		ack: mailer.AckEmailData{
			LogoURL:       "https://jeil.in/assets/cropped-PEL-NEW-LOGO-FINAL.png",
			LogoAlt:       "J P Extrusiontech Private Limited",
			Accent:        "#1e40af",
			Intro:         "Excellent!",
			DocumentKind:  "brochure",
			DownloadURL:   ic.cfg.BrochureURL,
			DownloadLabel: "📥 Download Product Brochure",
			CompanyLine:   "J P Extrusiontech Private Limited",
			SignOff:       "Best regards,",
		},
		successMessage: "Request received. Your brochure will be emailed shortly.",
		failureMessage: "Failed to send brochure. Please try again later.",
		logLabel:       "brochure",
	})
}

// handleRequestIntake is the shared catalogue/brochure flow: store the
// request, then send the owner notification and the requester
// acknowledgement in parallel.
func (ic *IntakeController) handleRequestIntake(c *gin.Context, variant requestVariant) {
	var input models.CatalogueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "All fields are required", http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	visitorIP := utils.VisitorIP(c)

	submission, err := ic.catalogues.Create(ctx, input, visitorIP)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"email": input.Email}, "failed to store "+variant.logLabel+" request")
		utils.ErrorResponse(c, variant.failureMessage, http.StatusInternalServerError)
		return
	}

	ownerHTML, err := mailer.RenderRequestOwnerEmail(mailer.RequestEmailData{
		Name:          input.Name,
		CompanyName:   input.CompanyName,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		ProductName:   input.ProductName,
		URL:           input.URL,
		VisitorIP:     visitorIP,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ack := variant.ack
	ack.Name = input.Name
	ackHTML, err := mailer.RenderAcknowledgementEmail(ack)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Owner copy and requester acknowledgement go out in parallel; neither
	// is ordered relative to the other.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ic.sender.Send(gctx, mailer.Message{
			From:     ic.cfg.MailFrom,
			To:       ic.cfg.OwnerEmails,
			Subject:  variant.ownerSubjectPrefix + " - " + input.ProductName + " | J P Extrusiontech Private Limited",
			HTMLBody: ownerHTML,
		})
	})
	g.Go(func() error {
		return ic.sender.Send(gctx, mailer.Message{
			From:     ic.cfg.MailFrom,
			To:       []string{input.Email},
			Subject:  variant.ackSubject,
			HTMLBody: ackHTML,
		})
	})

	if err := g.Wait(); err != nil {
		utils.LogError(err, map[string]interface{}{
			"submissionId": submission.ID.Hex(),
		}, variant.logLabel+" notification email failed")
		utils.ErrorResponse(c, variant.failureMessage, http.StatusInternalServerError)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"submissionId": submission.ID.Hex(),
		"product":      input.ProductName,
		"visitorIP":    visitorIP,
	}, variant.logLabel+" request stored and notified")

	utils.SuccessResponse(c, nil, variant.successMessage)
}
