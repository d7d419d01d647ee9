package contact

import (
	"errors"
	"fmt"
	"net/url"
)

type Kind string

const (
	KindContact    Kind = "contact"
	KindPhone      Kind = "phone"
	KindWhitepaper Kind = "whitepaper"
	KindNewsletter Kind = "newsletter"
)

// HoneypotField is hidden from humans by CSS and absent from every
// legitimate form.
const HoneypotField = "city"

// RecruitmentObject routes a contact submission to the recruitment mailbox.
const RecruitmentObject = "Recrutement"

var ErrUnknownKind = errors.New("unknown contact kind")

var kinds = map[string]Kind{
	string(KindContact):    KindContact,
	string(KindPhone):      KindPhone,
	string(KindWhitepaper): KindWhitepaper,
	string(KindNewsletter): KindNewsletter,
}

func ParseKind(name string) (Kind, error) {
	kind, ok := kinds[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

func IsBot(fields url.Values) bool {
	return fields.Get(HoneypotField) != ""
}
