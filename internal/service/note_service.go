package service

import (
	"context"
	"time"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/pkg/dragdrop"
	"notekeep-be/pkg/events"
	"notekeep-be/pkg/noteview"
)

type INoteService interface {
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	List(ctx context.Context, query *dto.ListNotesQuery) (*dto.NoteListResponse, error)
	Show(ctx context.Context, id int) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id int) error
	Move(ctx context.Context, req *dto.MoveNoteRequest) (*dto.NoteResponse, error)
	Duplicate(ctx context.Context, id int) (*dto.NoteResponse, error)
	TogglePin(ctx context.Context, id int) (*dto.NoteResponse, error)
	ToggleArchive(ctx context.Context, id int) (*dto.NoteResponse, error)
	Trash(ctx context.Context, id int) (*dto.NoteResponse, error)
	Restore(ctx context.Context, id int) (*dto.NoteResponse, error)
	Drop(ctx context.Context, req *dto.DropRequest) (*dto.NoteResponse, error)
	GetLabels(ctx context.Context, noteId int) ([]*dto.LabelResponse, error)
	AddLabel(ctx context.Context, noteId, labelId int) error
	RemoveLabel(ctx context.Context, noteId, labelId int) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (c *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.attachLabels(ctx, uow, notes); err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

func (c *noteService) List(ctx context.Context, query *dto.ListNotesQuery) (*dto.NoteListResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Push what we can down to the store; the view engine below stays
	// the authority on precedence either way.
	specs := []specification.Specification{specification.NotTrashed{}}
	if !query.Archived && query.FolderId != nil {
		specs = append(specs, specification.ByFolderID{FolderID: *query.FolderId})
	}
	if query.LabelId != nil {
		specs = append(specs, specification.HasLabel{LabelID: *query.LabelId})
	}
	if query.Search != "" {
		specs = append(specs, specification.TitleOrContentContains{Term: query.Search})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if err := c.attachLabels(ctx, uow, notes); err != nil {
		return nil, err
	}

	view := noteview.View{
		FolderId:     query.FolderId,
		LabelId:      query.LabelId,
		SearchTerm:   query.Search,
		ShowArchived: query.Archived,
	}
	visible := noteview.Visible(notes, view)
	pinned, others := noteview.Partition(visible, view)

	result := &dto.NoteListResponse{
		Pinned: make([]*dto.NoteResponse, 0, len(pinned)),
		Notes:  make([]*dto.NoteResponse, 0, len(others)),
	}
	for _, note := range pinned {
		result.Pinned = append(result.Pinned, toNoteResponse(note))
	}
	for _, note := range others {
		result.Notes = append(result.Notes, toNoteResponse(note))
	}
	return result, nil
}

func (c *noteService) Show(ctx context.Context, id int) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findNote(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := c.attachLabels(ctx, uow, []*entity.Note{note}); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := c.validateFolderId(ctx, uow, req.FolderId); err != nil {
		return nil, err
	}
	if err := c.validateLabelIds(ctx, uow, req.Labels); err != nil {
		return nil, err
	}

	now := time.Now()
	note := entity.Note{
		Title:     req.Title,
		Content:   req.Content,
		FolderId:  req.FolderId,
		IsPinned:  req.IsPinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}
	for _, labelId := range req.Labels {
		if err := uow.NoteLabelRepository().Add(ctx, note.Id, labelId); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionCreated, note.Id)
	return c.Show(ctx, note.Id)
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := c.validateFolderId(ctx, uow, req.FolderId); err != nil {
		return nil, err
	}
	if err := c.validateLabelIds(ctx, uow, req.Labels); err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Content = req.Content
	note.FolderId = req.FolderId
	note.IsArchived = req.IsArchived
	note.IsTrashed = req.IsTrashed
	note.IsPinned = req.IsPinned
	note.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	if err := c.reconcileLabels(ctx, uow, note.Id, req.Labels); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionUpdated, note.Id)
	return c.Show(ctx, note.Id)
}

// Delete removes the note row for good. Trashing is a flag toggle, this
// is the hard delete behind "empty trash" and explicit removal.
func (c *noteService) Delete(ctx context.Context, id int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findNote(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Associations go first, then the row.
	if err := uow.NoteLabelRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionDeleted, id)
	return nil
}

// Move reassigns the note's folder. Nil folder id means the "All Notes"
// bucket. Moving to the folder the note is already in is a no-op that
// still refreshes updated_at.
func (c *noteService) Move(ctx context.Context, req *dto.MoveNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := c.validateFolderId(ctx, uow, req.FolderId); err != nil {
		return nil, err
	}

	note.FolderId = req.FolderId
	note.UpdatedAt = time.Now()
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionUpdated, note.Id)
	return c.Show(ctx, note.Id)
}

// Duplicate copies a note under the title "<original> (Copy)". Content,
// folder and labels carry over; pin, archive and trash flags reset.
func (c *noteService) Duplicate(ctx context.Context, id int) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	original, err := c.findNote(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	labels, err := uow.NoteLabelRepository().LabelsForNote(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dup := entity.Note{
		Title:     original.Title + " (Copy)",
		Content:   original.Content,
		FolderId:  original.FolderId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &dup); err != nil {
		return nil, err
	}
	for _, label := range labels {
		if err := uow.NoteLabelRepository().Add(ctx, dup.Id, label.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionCreated, dup.Id)
	return c.Show(ctx, dup.Id)
}

func (c *noteService) TogglePin(ctx context.Context, id int) (*dto.NoteResponse, error) {
	return c.setFlags(ctx, id, func(n *entity.Note) { n.IsPinned = !n.IsPinned })
}

func (c *noteService) ToggleArchive(ctx context.Context, id int) (*dto.NoteResponse, error) {
	return c.setFlags(ctx, id, func(n *entity.Note) { n.IsArchived = !n.IsArchived })
}

func (c *noteService) Trash(ctx context.Context, id int) (*dto.NoteResponse, error) {
	return c.setFlags(ctx, id, func(n *entity.Note) { n.IsTrashed = true })
}

func (c *noteService) Restore(ctx context.Context, id int) (*dto.NoteResponse, error) {
	return c.setFlags(ctx, id, func(n *entity.Note) { n.IsTrashed = false })
}

func (c *noteService) setFlags(ctx context.Context, id int, mutate func(*entity.Note)) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.findNote(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	mutate(note)
	note.UpdatedAt = time.Now()
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionUpdated, note.Id)
	return c.Show(ctx, note.Id)
}

// Drop executes a drag-and-drop pair. Only note sources produce a move;
// anything else resolves to a no-op and returns nil without error.
func (c *noteService) Drop(ctx context.Context, req *dto.DropRequest) (*dto.NoteResponse, error) {
	source := dragdrop.ParseID(req.SourceId)
	target := dragdrop.ParseID(req.TargetId)

	switch dragdrop.Resolve(source, target) {
	case dragdrop.ActionMoveToFolder:
		folderId := target.Num
		return c.Move(ctx, &dto.MoveNoteRequest{Id: source.Num, FolderId: &folderId})
	case dragdrop.ActionMoveToAllNotes:
		return c.Move(ctx, &dto.MoveNoteRequest{Id: source.Num, FolderId: nil})
	default:
		return nil, nil
	}
}

func (c *noteService) GetLabels(ctx context.Context, noteId int) ([]*dto.LabelResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findNote(ctx, uow, noteId); err != nil {
		return nil, err
	}
	labels, err := uow.NoteLabelRepository().LabelsForNote(ctx, noteId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LabelResponse, 0, len(labels))
	for _, label := range labels {
		result = append(result, toLabelResponse(label))
	}
	return result, nil
}

// AddLabel is idempotent: attaching a label the note already has
// succeeds without effect.
func (c *noteService) AddLabel(ctx context.Context, noteId, labelId int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findNote(ctx, uow, noteId); err != nil {
		return err
	}
	label, err := uow.LabelRepository().FindOne(ctx, specification.ByID{ID: labelId})
	if err != nil {
		return err
	}
	if label == nil {
		return apperror.NewNotFound("Label not found")
	}

	if err := uow.NoteLabelRepository().Add(ctx, noteId, labelId); err != nil {
		return err
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionUpdated, noteId)
	return nil
}

func (c *noteService) RemoveLabel(ctx context.Context, noteId, labelId int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findNote(ctx, uow, noteId); err != nil {
		return err
	}

	removed, err := uow.NoteLabelRepository().Remove(ctx, noteId, labelId)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NewNotFound("Label is not attached to this note")
	}

	c.publisherService.PublishChange(ctx, "note", events.ActionUpdated, noteId)
	return nil
}

func (c *noteService) findNote(ctx context.Context, uow unitofwork.UnitOfWork, id int) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("Note not found")
	}
	return note, nil
}

func (c *noteService) validateFolderId(ctx context.Context, uow unitofwork.UnitOfWork, folderId *int) error {
	if folderId == nil {
		return nil
	}
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: *folderId})
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NewBadRequest("Folder does not exist")
	}
	return nil
}

func (c *noteService) validateLabelIds(ctx context.Context, uow unitofwork.UnitOfWork, labelIds []int) error {
	for _, labelId := range labelIds {
		label, err := uow.LabelRepository().FindOne(ctx, specification.ByID{ID: labelId})
		if err != nil {
			return err
		}
		if label == nil {
			return apperror.NewBadRequest("Label does not exist")
		}
	}
	return nil
}

// reconcileLabels brings the association table in line with the wanted
// set: missing ones are added, absent ones removed.
func (c *noteService) reconcileLabels(ctx context.Context, uow unitofwork.UnitOfWork, noteId int, want []int) error {
	current, err := uow.NoteLabelRepository().LabelsForNote(ctx, noteId)
	if err != nil {
		return err
	}

	wanted := make(map[int]bool, len(want))
	for _, id := range want {
		wanted[id] = true
	}

	for _, label := range current {
		if !wanted[label.Id] {
			if _, err := uow.NoteLabelRepository().Remove(ctx, noteId, label.Id); err != nil {
				return err
			}
		}
		delete(wanted, label.Id)
	}
	for id := range wanted {
		if err := uow.NoteLabelRepository().Add(ctx, noteId, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *noteService) attachLabels(ctx context.Context, uow unitofwork.UnitOfWork, notes []*entity.Note) error {
	if len(notes) == 0 {
		return nil
	}
	ids := make([]int, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.Id)
	}

	byNote, err := uow.NoteLabelRepository().LabelsForNotes(ctx, ids)
	if err != nil {
		return err
	}
	for _, note := range notes {
		note.Labels = note.Labels[:0]
		for _, label := range byNote[note.Id] {
			note.Labels = append(note.Labels, *label)
		}
	}
	return nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	labels := make([]*dto.LabelResponse, 0, len(note.Labels))
	for i := range note.Labels {
		labels = append(labels, toLabelResponse(&note.Labels[i]))
	}
	return &dto.NoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		FolderId:   note.FolderId,
		IsArchived: note.IsArchived,
		IsTrashed:  note.IsTrashed,
		IsPinned:   note.IsPinned,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
		Labels:     labels,
	}
}

func toLabelResponse(label *entity.Label) *dto.LabelResponse {
	return &dto.LabelResponse{
		Id:        label.Id,
		Name:      label.Name,
		Color:     label.Color,
		CreatedAt: label.CreatedAt,
	}
}
