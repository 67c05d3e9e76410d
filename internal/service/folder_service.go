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
	"notekeep-be/pkg/foldertree"

	gocache "github.com/patrickmn/go-cache"
)

const folderTreeCacheKey = "folder_tree"

type IFolderService interface {
	GetAll(ctx context.Context) ([]*dto.FolderResponse, error)
	GetTree(ctx context.Context) ([]*dto.FolderTreeResponse, error)
	Show(ctx context.Context, id int) (*dto.FolderResponse, error)
	Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error)
	Update(ctx context.Context, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error)
	Delete(ctx context.Context, id int) error
}

type folderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	treeCache        *gocache.Cache
}

func NewFolderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	treeTTL time.Duration,
) IFolderService {
	return &folderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		treeCache:        gocache.New(treeTTL, 2*treeTTL),
	}
}

func (c *folderService) GetAll(ctx context.Context) ([]*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		result = append(result, toFolderResponse(folder))
	}
	return result, nil
}

// GetTree returns the folder hierarchy, cached for a short TTL and
// flushed on every folder mutation.
func (c *folderService) GetTree(ctx context.Context) ([]*dto.FolderTreeResponse, error) {
	if cached, ok := c.treeCache.Get(folderTreeCacheKey); ok {
		return cached.([]*dto.FolderTreeResponse), nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tree := toTreeResponses(foldertree.Build(folders))
	c.treeCache.Set(folderTreeCacheKey, tree, gocache.DefaultExpiration)
	return tree, nil
}

func (c *folderService) Show(ctx context.Context, id int) (*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := c.findFolder(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toFolderResponse(folder), nil
}

func (c *folderService) Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := c.validateParentId(ctx, uow, req.ParentId, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	folder := entity.Folder{
		Name:      req.Name,
		ParentId:  req.ParentId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	c.treeCache.Delete(folderTreeCacheKey)
	c.publisherService.PublishChange(ctx, "folder", events.ActionCreated, folder.Id)
	return toFolderResponse(&folder), nil
}

func (c *folderService) Update(ctx context.Context, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := c.findFolder(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := c.validateParentId(ctx, uow, req.ParentId, req.Id); err != nil {
		return nil, err
	}

	folder.Name = req.Name
	folder.ParentId = req.ParentId
	folder.UpdatedAt = time.Now()
	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	c.treeCache.Delete(folderTreeCacheKey)
	c.publisherService.PublishChange(ctx, "folder", events.ActionUpdated, folder.Id)
	return toFolderResponse(folder), nil
}

// Delete trashes every note in the folder and its descendants, then
// removes the folder rows. Runs in one transaction so a failure leaves
// both the folders and their notes untouched.
func (c *folderService) Delete(ctx context.Context, id int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.findFolder(ctx, uow, id); err != nil {
		return err
	}
	all, err := uow.FolderRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	affected := append([]int{id}, foldertree.Descendants(all, id)...)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, folderId := range affected {
		if _, err := uow.NoteRepository().TrashByFolderId(ctx, folderId); err != nil {
			return err
		}
	}
	// Children before parents, so the FK cascade never races the
	// explicit deletes.
	for i := len(affected) - 1; i >= 0; i-- {
		if err := uow.FolderRepository().Delete(ctx, affected[i]); err != nil {
			return err
		}
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.treeCache.Delete(folderTreeCacheKey)
	c.publisherService.PublishChange(ctx, "folder", events.ActionDeleted, id)
	return nil
}

func (c *folderService) findFolder(ctx context.Context, uow unitofwork.UnitOfWork, id int) (*entity.Folder, error) {
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NewNotFound("Folder not found")
	}
	return folder, nil
}

// validateParentId rejects parents that do not exist and trivial
// self-nesting. The tree builder still tolerates dangling parents that
// slip in through the store directly.
func (c *folderService) validateParentId(ctx context.Context, uow unitofwork.UnitOfWork, parentId *int, selfId int) error {
	if parentId == nil {
		return nil
	}
	if selfId != 0 && *parentId == selfId {
		return apperror.NewBadRequest("Folder cannot be its own parent")
	}
	parent, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: *parentId})
	if err != nil {
		return err
	}
	if parent == nil {
		return apperror.NewBadRequest("Parent folder does not exist")
	}
	return nil
}

func toFolderResponse(folder *entity.Folder) *dto.FolderResponse {
	return &dto.FolderResponse{
		Id:        folder.Id,
		Name:      folder.Name,
		ParentId:  folder.ParentId,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}

func toTreeResponses(nodes []*foldertree.Node) []*dto.FolderTreeResponse {
	result := make([]*dto.FolderTreeResponse, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, &dto.FolderTreeResponse{
			Id:        node.Folder.Id,
			Name:      node.Folder.Name,
			ParentId:  node.Folder.ParentId,
			CreatedAt: node.Folder.CreatedAt,
			UpdatedAt: node.Folder.UpdatedAt,
			Children:  toTreeResponses(node.Children),
		})
	}
	return result
}
