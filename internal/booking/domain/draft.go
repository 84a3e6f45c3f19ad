package domain

import (
	"fmt"

	dErrors "railbook/pkg/domain-errors"
)

// Slot names one field of a draft booking. Slots are filled strictly in
// declaration order: a slot may only be set once every slot before it is
// present.
type Slot int

const (
	SlotOrigin Slot = iota + 1
	SlotDestination
	SlotTime
	SlotTrip
	SlotClass
	SlotName
	SlotEmail
	SlotPhoneNumber
	SlotPayment
)

var slotNames = map[Slot]string{
	SlotOrigin:      "origin",
	SlotDestination: "destination",
	SlotTime:        "time",
	SlotTrip:        "trip",
	SlotClass:       "class",
	SlotName:        "name",
	SlotEmail:       "email",
	SlotPhoneNumber: "phone_number",
	SlotPayment:     "payment_info",
}

func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Draft is the per-session, progressively filled booking record. Fields are
// absent until set. Draft values are snapshots: the With* setters return a
// new Draft and never mutate the receiver, so a stored draft is only ever
// replaced wholesale.
type Draft struct {
	Origin      *Location           `json:"origin"`
	Destination *Location           `json:"destination"`
	Time        *DepartureOrArrival `json:"time"`
	Trip        *TripID             `json:"trip"`
	Class       *Class              `json:"class"`
	Name        *Name               `json:"name"`
	Email       *Email              `json:"email"`
	PhoneNumber *PhoneNumber        `json:"phone_number"`
	PaymentInfo *PaymentInfo        `json:"payment_info"`
}

// Filled reports whether the slot is present.
func (d Draft) Filled(slot Slot) bool {
	switch slot {
	case SlotOrigin:
		return d.Origin != nil
	case SlotDestination:
		return d.Destination != nil
	case SlotTime:
		return d.Time != nil
	case SlotTrip:
		return d.Trip != nil
	case SlotClass:
		return d.Class != nil
	case SlotName:
		return d.Name != nil
	case SlotEmail:
		return d.Email != nil
	case SlotPhoneNumber:
		return d.PhoneNumber != nil
	case SlotPayment:
		return d.PaymentInfo != nil
	default:
		return false
	}
}

// Require returns an ordering error unless every listed slot is present.
// The error names the first missing prerequisite.
func (d Draft) Require(slots ...Slot) error {
	for _, slot := range slots {
		if !d.Filled(slot) {
			return dErrors.New(dErrors.CodeOrdering, fmt.Sprintf("set %s first", slot))
		}
	}
	return nil
}

// ready returns an ordering error unless every slot before the given one is
// present. Centralizing the check keeps the fill-order invariant in one place.
func (d Draft) ready(slot Slot) error {
	for prev := SlotOrigin; prev < slot; prev++ {
		if !d.Filled(prev) {
			return dErrors.New(dErrors.CodeOrdering,
				fmt.Sprintf("set %s before %s", prev, slot))
		}
	}
	return nil
}

// WithOrigin returns a copy of the draft with the origin set.
func (d Draft) WithOrigin(origin Location) (Draft, error) {
	if err := d.ready(SlotOrigin); err != nil {
		return Draft{}, err
	}
	d.Origin = &origin
	return d, nil
}

// WithDestination returns a copy of the draft with the destination set.
func (d Draft) WithDestination(destination Location) (Draft, error) {
	if err := d.ready(SlotDestination); err != nil {
		return Draft{}, err
	}
	d.Destination = &destination
	return d, nil
}

// WithTime returns a copy of the draft with the travel time constraint set.
func (d Draft) WithTime(t DepartureOrArrival) (Draft, error) {
	if err := d.ready(SlotTime); err != nil {
		return Draft{}, err
	}
	d.Time = &t
	return d, nil
}

// WithTrip returns a copy of the draft with the chosen trip set.
func (d Draft) WithTrip(trip TripID) (Draft, error) {
	if err := d.ready(SlotTrip); err != nil {
		return Draft{}, err
	}
	d.Trip = &trip
	return d, nil
}

// WithClass returns a copy of the draft with the travel class set.
func (d Draft) WithClass(class Class) (Draft, error) {
	if err := d.ready(SlotClass); err != nil {
		return Draft{}, err
	}
	d.Class = &class
	return d, nil
}

// WithName returns a copy of the draft with the passenger name set.
func (d Draft) WithName(name Name) (Draft, error) {
	if err := d.ready(SlotName); err != nil {
		return Draft{}, err
	}
	d.Name = &name
	return d, nil
}

// WithEmail returns a copy of the draft with the contact email set.
func (d Draft) WithEmail(email Email) (Draft, error) {
	if err := d.ready(SlotEmail); err != nil {
		return Draft{}, err
	}
	d.Email = &email
	return d, nil
}

// WithPhoneNumber returns a copy of the draft with the contact phone set.
func (d Draft) WithPhoneNumber(phone PhoneNumber) (Draft, error) {
	if err := d.ready(SlotPhoneNumber); err != nil {
		return Draft{}, err
	}
	d.PhoneNumber = &phone
	return d, nil
}

// WithPaymentInfo returns a copy of the draft with the payment token set.
// This is the final slot; a draft with it present is ready to confirm.
func (d Draft) WithPaymentInfo(payment PaymentInfo) (Draft, error) {
	if err := d.ready(SlotPayment); err != nil {
		return Draft{}, err
	}
	d.PaymentInfo = &payment
	return d, nil
}

// Complete reports whether every slot is present.
func (d Draft) Complete() bool {
	for slot := SlotOrigin; slot <= SlotPayment; slot++ {
		if !d.Filled(slot) {
			return false
		}
	}
	return true
}
