package entity

import (
	"time"

	"github.com/google/uuid"
)

// DraftStatus is the derived lifecycle state of an order draft. It is never
// stored: everything except Submitted is recomputed from field presence on read.
type DraftStatus string

const (
	DraftStatusEmpty         DraftStatus = "empty"
	DraftStatusBuilding      DraftStatus = "building"
	DraftStatusReadyToSubmit DraftStatus = "ready_to_submit"
	DraftStatusSubmitted     DraftStatus = "submitted"
)

// OrderDraft is an in-progress purchase order owned by a single interactive
// session. Lines keep insertion order; that order is the display and document
// order. Submission is terminal.
type OrderDraft struct {
	DraftID     uuid.UUID    `json:"draft_id"`
	PONumber    string       `json:"po_number"`
	SiteNumber  string       `json:"site_number"`
	Lines       []*OrderLine `json:"lines"`
	DeliveryID  string       `json:"delivery_id"`
	Address     Address      `json:"address"`
	Notes       string       `json:"notes"`
	Submitted   bool         `json:"submitted"`
	CreatedAt   time.Time    `json:"created_at"`
	SubmittedAt time.Time    `json:"submitted_at,omitempty"`
}

// Line returns the draft's line for itemID, or nil when the item is not in the cart.
func (d *OrderDraft) Line(itemID int) *OrderLine {
	for _, l := range d.Lines {
		if l.ItemID == itemID {
			return l
		}
	}
	return nil
}

// Ready reports whether the draft satisfies the submission gate: PO number,
// site number, a complete delivery address and at least one line.
func (d *OrderDraft) Ready() bool {
	return d.PONumber != "" &&
		d.SiteNumber != "" &&
		d.Address.Complete() &&
		len(d.Lines) > 0
}

// Status derives the lifecycle state from the draft's current fields.
func (d *OrderDraft) Status() DraftStatus {
	switch {
	case d.Submitted:
		return DraftStatusSubmitted
	case d.Ready():
		return DraftStatusReadyToSubmit
	case len(d.Lines) > 0 || d.PONumber != "" || d.SiteNumber != "" ||
		d.Notes != "" || d.Address != (Address{}):
		return DraftStatusBuilding
	default:
		return DraftStatusEmpty
	}
}
