package service

import (
	"context"
	"strings"
	"time"

	"smartnotes-be/internal/dto"
	"smartnotes-be/internal/entity"
	"smartnotes-be/internal/pkg/serverutils"
	"smartnotes-be/internal/repository/specification"
	"smartnotes-be/internal/repository/unitofwork"
)

type INoteService interface {
	List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, userId uint, id uint) (*entity.Note, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) error
	Delete(ctx context.Context, userId uint, id uint) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

// findOwned is the ownership gate for every single-note operation.
// Absent and not-owned stay distinct errors: the API maps them to 404/403,
// the web surface collapses both into a redirect.
func (s *noteService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uint) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFoundError("Note not found")
	}
	if !note.OwnedBy(userId) {
		return nil, serverutils.ForbiddenError("Forbidden")
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		response = append(response, &dto.NoteResponse{
			Id:        note.Id,
			Title:     note.Title,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}
	return response, nil
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, serverutils.ValidationError("Title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := &entity.Note{
		Title:     title,
		Content:   req.Content,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Show(ctx context.Context, userId uint, id uint) (*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.findOwned(ctx, uow, userId, id)
}

func (s *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return serverutils.ValidationError("Title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	now := time.Now()
	note.Title = title
	note.Content = req.Content
	note.UpdatedAt = &now

	return uow.NoteRepository().Update(ctx, note)
}

func (s *noteService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	return uow.NoteRepository().Delete(ctx, note.Id)
}
