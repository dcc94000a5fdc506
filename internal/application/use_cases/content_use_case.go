package use_cases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/domain/equipment"
	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

const (
	ContentSpecs     = "specs"
	ContentDownloads = "downloads"
)

// ContentUseCase manages the admin-editable spec sheets and downloads shown on
// equipment pages. Reads never fail because of storage trouble; they fall back
// to what is built in. Writes do report storage errors.
type ContentUseCase struct {
	store    ports.KeyValueStore
	observer ports.ContentObserver
	clock    clock.Clock
	log      *logger.Logger
}

func NewContentUseCase(store ports.KeyValueStore, observer ports.ContentObserver, c clock.Clock, log *logger.Logger) *ContentUseCase {
	if observer == nil {
		observer = ports.NopContentObserver{}
	}
	return &ContentUseCase{
		store:    store,
		observer: observer,
		clock:    c,
		log:      log,
	}
}

func (uc *ContentUseCase) Specs(ctx context.Context, slug string) (equipment.SpecSheet, error) {
	if !equipment.ValidSlug(slug) {
		return nil, errors.ErrInvalidSlug
	}
	return equipment.Merge(equipment.BuiltinSpecs(slug), uc.storedSpecs(ctx, slug)), nil
}

func (uc *ContentUseCase) AddSpec(ctx context.Context, admin bool, slug, label, value string) (equipment.SpecSheet, error) {
	if err := uc.authorize(admin, slug); err != nil {
		return nil, err
	}

	overrides := uc.storedSpecs(ctx, slug)
	if err := overrides.Set(label, value); err != nil {
		return nil, err
	}

	if err := uc.write(ctx, equipment.SpecsKey(slug), overrides); err != nil {
		return nil, err
	}
	uc.observer.ContentChanged(ctx, ContentSpecs, slug)

	return equipment.Merge(equipment.BuiltinSpecs(slug), overrides), nil
}

// ClearSpecs drops every stored override, leaving the built-in sheet.
func (uc *ContentUseCase) ClearSpecs(ctx context.Context, admin bool, slug string) (equipment.SpecSheet, error) {
	if err := uc.authorize(admin, slug); err != nil {
		return nil, err
	}

	if err := uc.write(ctx, equipment.SpecsKey(slug), equipment.SpecSheet{}); err != nil {
		return nil, err
	}
	uc.observer.ContentChanged(ctx, ContentSpecs, slug)

	return equipment.BuiltinSpecs(slug), nil
}

func (uc *ContentUseCase) Downloads(ctx context.Context, slug string) ([]equipment.Download, error) {
	if !equipment.ValidSlug(slug) {
		return nil, errors.ErrInvalidSlug
	}
	return uc.storedDownloads(ctx, slug), nil
}

func (uc *ContentUseCase) Upload(ctx context.Context, admin bool, slug, filename string, data []byte) (equipment.Download, error) {
	if err := uc.authorize(admin, slug); err != nil {
		return equipment.Download{}, err
	}

	dl, err := equipment.NewDownload(filename, data, uc.clock.Now())
	if err != nil {
		return equipment.Download{}, err
	}

	downloads := append(uc.storedDownloads(ctx, slug), dl)
	if err := uc.write(ctx, equipment.DownloadsKey(slug), downloads); err != nil {
		return equipment.Download{}, err
	}
	uc.observer.ContentChanged(ctx, ContentDownloads, slug)

	uc.log.Info("Download uploaded", "slug", slug, "name", dl.Name, "size", dl.Size)
	return dl, nil
}

// RemoveDownload deletes the download at index. An out-of-range index leaves
// the list untouched.
func (uc *ContentUseCase) RemoveDownload(ctx context.Context, admin bool, slug string, index int) ([]equipment.Download, error) {
	if err := uc.authorize(admin, slug); err != nil {
		return nil, err
	}

	downloads := uc.storedDownloads(ctx, slug)
	if index < 0 || index >= len(downloads) {
		return downloads, nil
	}

	downloads = append(downloads[:index], downloads[index+1:]...)
	if err := uc.write(ctx, equipment.DownloadsKey(slug), downloads); err != nil {
		return nil, err
	}
	uc.observer.ContentChanged(ctx, ContentDownloads, slug)

	return downloads, nil
}

func (uc *ContentUseCase) authorize(admin bool, slug string) error {
	if !admin {
		return errors.ErrAdminRequired
	}
	if !equipment.ValidSlug(slug) {
		return errors.ErrInvalidSlug
	}
	return nil
}

func (uc *ContentUseCase) storedSpecs(ctx context.Context, slug string) equipment.SpecSheet {
	var sheet equipment.SpecSheet
	if !uc.read(ctx, equipment.SpecsKey(slug), &sheet) {
		return equipment.SpecSheet{}
	}
	return sheet
}

func (uc *ContentUseCase) storedDownloads(ctx context.Context, slug string) []equipment.Download {
	var downloads []equipment.Download
	if !uc.read(ctx, equipment.DownloadsKey(slug), &downloads) {
		return []equipment.Download{}
	}
	return downloads
}

func (uc *ContentUseCase) read(ctx context.Context, key string, into interface{}) bool {
	data, found, err := uc.store.Get(ctx, key)
	if err != nil {
		uc.log.Warn("Failed to read content", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		uc.log.Warn("Ignoring unreadable content", "key", key, "error", err)
		return false
	}
	return true
}

func (uc *ContentUseCase) write(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := uc.store.Set(ctx, key, data); err != nil {
		uc.log.Error("Failed to write content", "key", key, "error", err)
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
