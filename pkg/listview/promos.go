package listview

import (
	"context"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/validate"
	"go.uber.org/zap"
)

// ----- Offer texts -----

type OfferTexts struct {
	*Controller[models.OfferText]
	client *api.Client
}

func NewOfferTexts(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *OfferTexts {
	desc := Descriptor[models.OfferText]{
		Resource: "offer-texts",
		Label:    "Offer text",
		Fetch:    client.ListOfferTexts,
		SearchFields: func(o models.OfferText) []string {
			return []string{o.Text}
		},
		SortKey: func(o models.OfferText) int64 {
			return models.ParseTimestamp(o.CreatedAt).UnixMilli()
		},
		Stats: activeStats(func(o models.OfferText) bool { return o.IsActive }),
	}
	return &OfferTexts{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

func (o *OfferTexts) Create(ctx context.Context, f api.OfferTextForm) error {
	if err := validate.OfferText(f, true); err != nil {
		return err
	}
	return o.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := o.client.CreateOfferText(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (o *OfferTexts) Update(ctx context.Context, id string, f api.OfferTextForm) error {
	if err := validate.OfferText(f, false); err != nil {
		return err
	}
	return o.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, o.client.UpdateOfferText(ctx, id, f)
	})
}

func (o *OfferTexts) SetStatus(ctx context.Context, id string, active bool) error {
	return o.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, o.client.SetOfferTextStatus(ctx, id, active)
	})
}

func (o *OfferTexts) Delete(ctx context.Context, id string) error {
	return o.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, o.client.DeleteOfferText(ctx, id)
	})
}

// ----- Offer images -----

type OfferImages struct {
	*Controller[models.OfferImage]
	client *api.Client
}

func NewOfferImages(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *OfferImages {
	desc := Descriptor[models.OfferImage]{
		Resource: "offer-images",
		Label:    "Offer image",
		Fetch:    client.ListOfferImages,
		// No searchable text on this screen.
		SortKey: func(o models.OfferImage) int64 {
			return models.ParseTimestamp(o.CreatedAt).UnixMilli()
		},
		Stats: activeStats(func(o models.OfferImage) bool { return o.IsActive }),
	}
	return &OfferImages{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

func (o *OfferImages) Create(ctx context.Context, f api.OfferImageForm) error {
	if err := validate.OfferImage(f, true); err != nil {
		return err
	}
	return o.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := o.client.CreateOfferImage(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (o *OfferImages) Update(ctx context.Context, id string, f api.OfferImageForm) error {
	if err := validate.OfferImage(f, false); err != nil {
		return err
	}
	return o.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, o.client.UpdateOfferImage(ctx, id, f)
	})
}

func (o *OfferImages) SetStatus(ctx context.Context, id string, active bool) error {
	return o.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, o.client.SetOfferImageStatus(ctx, id, active)
	})
}

func (o *OfferImages) Delete(ctx context.Context, id string) error {
	return o.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, o.client.DeleteOfferImage(ctx, id)
	})
}

// ----- Sliders -----

type Sliders struct {
	*Controller[models.Slider]
	client *api.Client
}

func NewSliders(client *api.Client, logger *zap.Logger, notify Notifier, auditor Auditor) *Sliders {
	desc := Descriptor[models.Slider]{
		Resource: "sliders",
		Label:    "Slider",
		Fetch:    client.ListSliders,
		SearchFields: func(s models.Slider) []string {
			return []string{s.Title, s.Subtitle}
		},
		// Sliders order by their explicit sortOrder field, not createdAt.
		SortKey: func(s models.Slider) int64 { return int64(s.SortOrder) },
		Stats:   activeStats(func(s models.Slider) bool { return s.IsActive }),
	}
	return &Sliders{
		Controller: New(desc, logger, notify, auditor),
		client:     client,
	}
}

func (s *Sliders) Create(ctx context.Context, f api.SliderForm) error {
	if err := validate.Slider(f, true); err != nil {
		return err
	}
	return s.Mutate(ctx, ActionCreate, func(ctx context.Context) (string, error) {
		created, err := s.client.CreateSlider(ctx, f)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

func (s *Sliders) Update(ctx context.Context, id string, f api.SliderForm) error {
	if err := validate.Slider(f, false); err != nil {
		return err
	}
	return s.Mutate(ctx, ActionUpdate, func(ctx context.Context) (string, error) {
		return id, s.client.UpdateSlider(ctx, id, f)
	})
}

func (s *Sliders) SetStatus(ctx context.Context, id string, active bool) error {
	return s.Mutate(ctx, ActionSetStatus, func(ctx context.Context) (string, error) {
		return id, s.client.SetSliderStatus(ctx, id, active)
	})
}

func (s *Sliders) Delete(ctx context.Context, id string) error {
	return s.Mutate(ctx, ActionDelete, func(ctx context.Context) (string, error) {
		return id, s.client.DeleteSlider(ctx, id)
	})
}
