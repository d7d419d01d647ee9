package contact

import (
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form field names posted by the site templates.
const (
	FieldObject            = "object"
	FieldName              = "name"
	FieldEmail             = "email"
	FieldCompany           = "company"
	FieldPhone             = "phone"
	FieldPromotion         = "promotion"
	FieldMessage           = "message"
	FieldContactEmail      = "contact-email"
	FieldContactDirectMail = "contact-direct-mail"
)

type Submission struct {
	Ref  string
	Kind Kind

	Object    string
	Name      string
	Email     string
	Company   string
	Phone     string
	Promotion string
	Message   string

	ContactByEmail      bool
	ContactByDirectMail bool
}

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Routing holds the mailboxes submissions are sent to.
type Routing struct {
	DefaultRecipient     string
	RecruitmentRecipient string
}

func NewSubmission(kind Kind, fields url.Values) Submission {
	get := func(name string) string {
		return strings.TrimSpace(fields.Get(name))
	}

	return Submission{
		Ref:                 uuid.NewString(),
		Kind:                kind,
		Object:              get(FieldObject),
		Name:                get(FieldName),
		Email:               get(FieldEmail),
		Company:             get(FieldCompany),
		Phone:               get(FieldPhone),
		Promotion:           get(FieldPromotion),
		Message:             get(FieldMessage),
		ContactByEmail:      get(FieldContactEmail) != "",
		ContactByDirectMail: get(FieldContactDirectMail) != "",
	}
}

func (s Submission) Recipient(r Routing) string {
	if s.Kind == KindContact && s.Object == RecruitmentObject && r.RecruitmentRecipient != "" {
		return r.RecruitmentRecipient
	}
	return r.DefaultRecipient
}

func (s Submission) Subject() string {
	switch s.Kind {
	case KindPhone:
		return "Demande de rappel sur le site BackOffice"
	case KindWhitepaper:
		return "Téléchargement du livre blanc sur le site BackOffice"
	case KindNewsletter:
		return "Inscription à la newsletter sur le site BackOffice"
	default:
		return "Prise de contact sur le site BackOffice"
	}
}

// Body lists the submitted fields under their French labels, in the fixed
// order of each kind.
func (s Submission) Body() string {
	var lines []string

	switch s.Kind {
	case KindContact:
		lines = []string{
			labeled("Objet", s.Object),
			labeled("Nom", s.Name),
			labeled("Email", s.Email),
			labeled("Société", s.Company),
			labeled("Téléphone", s.Phone),
			labeled("Code promotionnel", s.Promotion),
			labeled("Demande", s.Message),
		}
	case KindPhone:
		lines = []string{
			"Demande de rappel au téléphone.",
			labeled("Téléphone", s.Phone),
		}
	case KindWhitepaper:
		lines = []string{
			"Téléchargement du livre blanc.",
			labeled("Nom", s.Name),
			labeled("Email", s.Email),
			labeled("Société", s.Company),
			labeled("Téléphone", s.Phone),
		}
	case KindNewsletter:
		lines = []string{
			"Inscription à la newsletter.",
			labeled("Email", s.Email),
			labeled("Contact par email", yesNo(s.ContactByEmail)),
			labeled("Contact par courrier", yesNo(s.ContactByDirectMail)),
		}
	}

	return strings.Join(lines, "<br>")
}

func (s Submission) Outbound(r Routing) Message {
	return Message{
		To:      s.Recipient(r),
		Subject: s.Subject(),
		HTML:    s.Body(),
	}
}

// Row is the spreadsheet record: date, time, object, name, company, email,
// phone, promotion code, message.
func (s Submission) Row(now time.Time) []string {
	return []string{
		now.Format("02/01/2006"),
		now.Format("15:04"),
		s.topic(),
		s.Name,
		s.Company,
		s.Email,
		s.Phone,
		s.Promotion,
		s.Message,
	}
}

func (s Submission) topic() string {
	switch s.Kind {
	case KindPhone:
		return "Rappel"
	case KindWhitepaper:
		return "Livre blanc"
	case KindNewsletter:
		return "Newsletter"
	default:
		if s.Object != "" {
			return s.Object
		}
		return "Contact"
	}
}

func labeled(label, value string) string {
	return label + " : " + html.EscapeString(value)
}

func yesNo(flag bool) string {
	if flag {
		return "Oui"
	}
	return "Non"
}
