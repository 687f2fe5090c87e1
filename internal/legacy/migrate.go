package legacy

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/campusfind/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItemWriter inserts a fully formed item, preserving supplied timestamps.
type ItemWriter interface {
	InsertItem(item *models.Item) error
}

// ContactWriter inserts a fully formed contact request.
type ContactWriter interface {
	InsertContactRequest(cr *models.ContactRequest) error
}

// ImageUploader re-hosts an embedded image and returns its public URL.
type ImageUploader interface {
	Upload(data []byte, mimeType, folder string) (string, error)
}

// Outcome records the fate of one legacy record.
type Outcome struct {
	Kind   string `json:"kind"` // "item" or "contact"
	ID     string `json:"id"`   // legacy id
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// Report summarizes a migration run. Success is true whenever the legacy
// source held readable data, even if individual records failed; per-record
// detail lives in Outcomes and the logs, not in the user-facing Message.
type Report struct {
	Success  bool
	Message  string
	Items    int
	Contacts int
	Outcomes []Outcome
}

// Migrator copies leftover legacy records into the hosted store. It is a
// one-shot, best-effort routine: records are processed one at a time in
// source order, individual failures are recorded and skipped, and the
// local source is cleared only after all attempts are accounted for.
//
// It is not strictly idempotent: a crash between the inserts and Clear
// leaves the source in place, and a re-run will insert those records a
// second time.
type Migrator struct {
	source   Source
	items    ItemWriter
	contacts ContactWriter
	uploads  ImageUploader
}

func NewMigrator(source Source, items ItemWriter, contacts ContactWriter, uploads ImageUploader) *Migrator {
	return &Migrator{source: source, items: items, contacts: contacts, uploads: uploads}
}

// Run executes the migration once.
func (m *Migrator) Run() Report {
	legacyItems, haveItems, err := m.source.Items()
	if err != nil {
		return Report{Success: false, Message: "migration failed: " + err.Error()}
	}
	legacyContacts, haveContacts, err := m.source.Contacts()
	if err != nil {
		return Report{Success: false, Message: "migration failed: " + err.Error()}
	}
	if !haveItems && !haveContacts {
		return Report{Success: false, Message: "no legacy data found to migrate"}
	}

	var rep Report

	for _, li := range legacyItems {
		if err := m.migrateItem(li); err != nil {
			slog.Warn("failed to migrate legacy item", "legacy_id", li.ID, "error", err)
			rep.Outcomes = append(rep.Outcomes, Outcome{Kind: "item", ID: li.ID, Reason: err.Error()})
			continue
		}
		rep.Items++
		rep.Outcomes = append(rep.Outcomes, Outcome{Kind: "item", ID: li.ID, OK: true})
	}

	for _, lc := range legacyContacts {
		if err := m.migrateContact(lc); err != nil {
			slog.Warn("failed to migrate legacy contact request", "legacy_id", lc.ID, "error", err)
			rep.Outcomes = append(rep.Outcomes, Outcome{Kind: "contact", ID: lc.ID, Reason: err.Error()})
			continue
		}
		rep.Contacts++
		rep.Outcomes = append(rep.Outcomes, Outcome{Kind: "contact", ID: lc.ID, OK: true})
	}

	if rep.Items+rep.Contacts > 0 {
		if err := m.source.Clear(); err != nil {
			slog.Warn("failed to clear legacy source after migration", "error", err)
		}
	}

	rep.Success = true
	rep.Message = fmt.Sprintf("migrated %d items and %d contact requests", rep.Items, rep.Contacts)
	return rep
}

func (m *Migrator) migrateItem(li Item) error {
	if li.Type != models.TypeLost && li.Type != models.TypeFound {
		return fmt.Errorf("unknown item type %q", li.Type)
	}

	createdAt, err := parseTimestamp(li.CreatedAt)
	if err != nil {
		return fmt.Errorf("bad created_at: %w", err)
	}
	date, err := parseTimestamp(li.Date)
	if err != nil {
		return fmt.Errorf("bad date: %w", err)
	}

	ref, err := ParseImageRef(li.ImageURL)
	if err != nil {
		// Undecodable embedded image: keep the record, drop the image.
		slog.Warn("failed to parse legacy image, migrating item without it", "legacy_id", li.ID, "error", err)
		ref = ImageRef{Kind: ImageNone}
	}

	imageURL := ""
	switch ref.Kind {
	case ImageRemote:
		imageURL = ref.URL
	case ImageEmbedded:
		uploaded, err := m.uploads.Upload(ref.Data, ref.MIME, li.Type)
		if err != nil {
			slog.Warn("failed to re-upload legacy image, migrating item without it", "legacy_id", li.ID, "error", err)
		} else {
			imageURL = uploaded
		}
	}

	item := models.Item{
		ID:          uuid.New(),
		Type:        li.Type,
		Name:        li.Name,
		Email:       li.Email,
		ItemName:    li.ItemName,
		Category:    li.Category,
		Description: li.Description,
		Location:    li.Location,
		Date:        datatypes.Date(date),
		ImageURL:    imageURL,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	return m.items.InsertItem(&item)
}

func (m *Migrator) migrateContact(lc ContactRequest) error {
	itemID, err := uuid.Parse(lc.ItemID)
	if err != nil {
		return fmt.Errorf("bad item_id %q", lc.ItemID)
	}
	createdAt, err := parseTimestamp(lc.CreatedAt)
	if err != nil {
		return fmt.Errorf("bad created_at: %w", err)
	}

	cr := models.ContactRequest{
		ID:        uuid.New(),
		ItemID:    itemID,
		FromName:  lc.FromName,
		FromEmail: lc.FromEmail,
		ToEmail:   lc.ToEmail,
		Message:   lc.Message,
		IsRead:    lc.IsRead,
		CreatedAt: createdAt,
	}
	return m.contacts.InsertContactRequest(&cr)
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
	}
	return t, nil
}
