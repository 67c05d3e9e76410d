package service

import (
	"context"
	"time"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/pkg/events"
)

const defaultLabelColor = "#808080"

type ILabelService interface {
	GetAll(ctx context.Context) ([]*dto.LabelResponse, error)
	Show(ctx context.Context, id int) (*dto.LabelResponse, error)
	Create(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	Update(ctx context.Context, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	Delete(ctx context.Context, id int) error
}

type labelService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewLabelService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ILabelService {
	return &labelService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (c *labelService) GetAll(ctx context.Context) ([]*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	labels, err := uow.LabelRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LabelResponse, 0, len(labels))
	for _, label := range labels {
		result = append(result, toLabelResponse(label))
	}
	return result, nil
}

func (c *labelService) Show(ctx context.Context, id int) (*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label, err := c.findLabel(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toLabelResponse(label), nil
}

func (c *labelService) Create(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := c.checkNameConflict(ctx, uow, req.Name, 0); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = defaultLabelColor
	}
	label := entity.Label{
		Name:      req.Name,
		Color:     color,
		CreatedAt: time.Now(),
	}
	if err := uow.LabelRepository().Create(ctx, &label); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "label", events.ActionCreated, label.Id)
	return toLabelResponse(&label), nil
}

func (c *labelService) Update(ctx context.Context, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	label, err := c.findLabel(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := c.checkNameConflict(ctx, uow, req.Name, req.Id); err != nil {
		return nil, err
	}

	label.Name = req.Name
	if req.Color != "" {
		label.Color = req.Color
	}
	if err := uow.LabelRepository().Update(ctx, label); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "label", events.ActionUpdated, label.Id)
	return toLabelResponse(label), nil
}

// Delete removes the label and its associations. Notes that carried the
// label survive untouched.
func (c *labelService) Delete(ctx context.Context, id int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findLabel(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteLabelRepository().DeleteByLabelId(ctx, id); err != nil {
		return err
	}
	if err := uow.LabelRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.publisherService.PublishChange(ctx, "label", events.ActionDeleted, id)
	return nil
}

func (c *labelService) findLabel(ctx context.Context, uow unitofwork.UnitOfWork, id int) (*entity.Label, error) {
	label, err := uow.LabelRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NewNotFound("Label not found")
	}
	return label, nil
}

func (c *labelService) checkNameConflict(ctx context.Context, uow unitofwork.UnitOfWork, name string, selfId int) error {
	existing, err := uow.LabelRepository().FindOne(ctx, specification.ByName{Name: name})
	if err != nil {
		return err
	}
	if existing != nil && existing.Id != selfId {
		return apperror.NewConflict("A label with this name already exists")
	}
	return nil
}
