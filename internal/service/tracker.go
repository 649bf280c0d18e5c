package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	pb "tracker-grpc/api/proto/gen"
	"tracker-grpc/internal/authz"
	"tracker-grpc/internal/config"
	"tracker-grpc/internal/contextkeys"
	"tracker-grpc/internal/models"
	"tracker-grpc/internal/storage"
	"tracker-grpc/internal/view"
	"tracker-grpc/internal/watch"
	"tracker-grpc/pkg/logging"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TrackerStorage interface {
	CreateRecord(ctx context.Context, kind models.Kind, label, link string, actor *authz.Actor) (*models.Record, error)
	DeleteRecord(ctx context.Context, kind models.Kind, id int64, actor *authz.Actor) (*models.Record, error)
	SetChecked(ctx context.Context, id int64, checked bool, actor *authz.Actor) (*models.Record, error)
	SetPrivate(ctx context.Context, id int64, private bool, actor *authz.Actor) (*models.Record, error)
	ListVisible(ctx context.Context, kind models.Kind, viewerId int64) ([]*models.Record, error)
	CountIncomplete(ctx context.Context, viewerId int64) (int64, error)
	AllRecords(ctx context.Context) ([]*models.Record, error)
}

type SearchIndex interface {
	IndexRecord(ctx context.Context, rec *models.Record) error
	DeleteRecord(ctx context.Context, id int64) error
	Search(ctx context.Context, kind models.Kind, viewerId int64, query string) ([]*models.Record, error)
}

type EventSender interface {
	SendEventEmail(ctx context.Context, message *models.EventMessage) error
}

var asyncTimeout = 5 * time.Second

type TrackerService struct {
	pb.UnimplementedTrackerServiceServer
	cfg    *config.Config
	log    *slog.Logger
	db     TrackerStorage
	search SearchIndex
	events EventSender
	hub    *watch.Hub
}

func NewTrackerService(cfg *config.Config, log *slog.Logger, db TrackerStorage, search SearchIndex, events EventSender, hub *watch.Hub) *TrackerService {
	return &TrackerService{cfg: cfg, log: log, db: db, search: search, events: events, hub: hub}
}

func (s *TrackerService) AddTask(ctx context.Context, req *pb.AddTaskRequest) (*pb.AddTaskResponse, error) {
	rec, err := s.addRecord(ctx, models.KindTask, req.GetLabel(), req.GetLink())
	if err != nil {
		return nil, err
	}
	return &pb.AddTaskResponse{Task: taskToPb(rec)}, nil
}

func (s *TrackerService) AddProject(ctx context.Context, req *pb.AddProjectRequest) (*pb.AddProjectResponse, error) {
	rec, err := s.addRecord(ctx, models.KindProject, req.GetProject(), req.GetLink())
	if err != nil {
		return nil, err
	}
	return &pb.AddProjectResponse{Project: projectToPb(rec)}, nil
}

func (s *TrackerService) addRecord(ctx context.Context, kind models.Kind, label, link string) (*models.Record, error) {
	log := contextkeys.GetLogger(ctx)

	actor := actorFromContext(ctx)
	if actor == nil {
		log.Error("anonymous caller")
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}

	log.Debug("attempt")

	label = processText(label)
	link = processText(link)

	if !textIsValid(label, s.cfg.Params.Label) || !textIsValid(link, s.cfg.Params.Link) {
		log.Error("text len invalid")
		return nil, status.Error(codes.InvalidArgument, ErrInvalidTextMessage)
	}

	rec, err := s.db.CreateRecord(ctx, kind, label, link, actor)
	if errors.Is(err, storage.ErrNotAuthorized) {
		log.Error("not authorized", logging.Err(err))
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}
	if err != nil {
		log.Error("db error", logging.DbErr("CreateRecord", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	log.Info("record created", slog.Int64("record_id", rec.Id), slog.String("kind", string(kind)))

	s.afterWrite(ctx, watch.Added, rec, actor, "create")
	return rec, nil
}

func (s *TrackerService) DeleteTask(ctx context.Context, req *pb.DeleteTaskRequest) (*pb.DeleteTaskResponse, error) {
	rec, err := s.deleteRecord(ctx, models.KindTask, req.GetTaskId())
	if err != nil {
		return nil, err
	}
	return &pb.DeleteTaskResponse{Task: taskToPb(rec)}, nil
}

func (s *TrackerService) DeleteProject(ctx context.Context, req *pb.DeleteProjectRequest) (*pb.DeleteProjectResponse, error) {
	rec, err := s.deleteRecord(ctx, models.KindProject, req.GetProjectId())
	if err != nil {
		return nil, err
	}
	return &pb.DeleteProjectResponse{Project: projectToPb(rec)}, nil
}

func (s *TrackerService) deleteRecord(ctx context.Context, kind models.Kind, id int64) (*models.Record, error) {
	log := contextkeys.GetLogger(ctx).With(slog.Int64("record_id", id))

	actor := actorFromContext(ctx)
	if actor == nil {
		log.Error("anonymous caller")
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}

	log.Debug("attempt")

	rec, err := s.db.DeleteRecord(ctx, kind, id, actor)
	if errors.Is(err, storage.ErrNotAuthorized) {
		log.Error("not authorized", logging.Err(err))
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}
	if err != nil {
		log.Error("db error", logging.DbErr("DeleteRecord", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	log.Info("record deleted")

	s.afterWrite(ctx, watch.Removed, rec, actor, "delete")
	return rec, nil
}

func (s *TrackerService) SetChecked(ctx context.Context, req *pb.SetCheckedRequest) (*pb.SetCheckedResponse, error) {
	log := contextkeys.GetLogger(ctx).With(slog.Int64("record_id", req.GetRecordId()))

	actor := actorFromContext(ctx)
	if actor == nil {
		log.Error("anonymous caller")
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}

	log.Debug("attempt")

	rec, err := s.db.SetChecked(ctx, req.GetRecordId(), req.GetChecked(), actor)
	if errors.Is(err, storage.ErrNotAuthorized) {
		log.Error("not authorized", logging.Err(err))
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}
	if err != nil {
		log.Error("db error", logging.DbErr("SetChecked", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	log.Info("record checked set", slog.Bool("checked", rec.Checked))

	eventType := "check"
	if !rec.Checked {
		eventType = "uncheck"
	}
	s.afterWrite(ctx, watch.Changed, rec, actor, eventType)

	return &pb.SetCheckedResponse{}, nil
}

func (s *TrackerService) SetPrivate(ctx context.Context, req *pb.SetPrivateRequest) (*pb.SetPrivateResponse, error) {
	log := contextkeys.GetLogger(ctx).With(slog.Int64("record_id", req.GetRecordId()))

	actor := actorFromContext(ctx)
	if actor == nil {
		log.Error("anonymous caller")
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}

	log.Debug("attempt")

	rec, err := s.db.SetPrivate(ctx, req.GetRecordId(), req.GetPrivate(), actor)
	if errors.Is(err, storage.ErrNotAuthorized) {
		log.Error("not authorized", logging.Err(err))
		return nil, status.Error(codes.PermissionDenied, ErrNotAuthorizedMessage)
	}
	if err != nil {
		log.Error("db error", logging.DbErr("SetPrivate", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	log.Info("record private set", slog.Bool("private", rec.Private))

	eventType := "private"
	if !rec.Private {
		eventType = "public"
	}
	s.afterWrite(ctx, watch.Changed, rec, actor, eventType)

	return &pb.SetPrivateResponse{}, nil
}

func (s *TrackerService) ListTasks(ctx context.Context, req *pb.ListTasksRequest) (*pb.ListTasksResponse, error) {
	records, err := s.listRecords(ctx, models.KindTask, req.GetHideCompleted())
	if err != nil {
		return nil, err
	}

	tasks := make([]*pb.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, taskToPb(rec))
	}
	return &pb.ListTasksResponse{Tasks: tasks}, nil
}

func (s *TrackerService) ListProjects(ctx context.Context, req *pb.ListProjectsRequest) (*pb.ListProjectsResponse, error) {
	records, err := s.listRecords(ctx, models.KindProject, req.GetHideCompleted())
	if err != nil {
		return nil, err
	}

	projects := make([]*pb.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, projectToPb(rec))
	}
	return &pb.ListProjectsResponse{Projects: projects}, nil
}

func (s *TrackerService) listRecords(ctx context.Context, kind models.Kind, hideCompleted bool) ([]*models.Record, error) {
	log := contextkeys.GetLogger(ctx)

	records, err := s.db.ListVisible(ctx, kind, viewerIdFromContext(ctx))
	if err != nil {
		log.Error("db error", logging.DbErr("ListVisible", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	return view.Project(records, hideCompleted), nil
}

func (s *TrackerService) IncompleteCount(ctx context.Context, req *pb.IncompleteCountRequest) (*pb.IncompleteCountResponse, error) {
	log := contextkeys.GetLogger(ctx)

	count, err := s.db.CountIncomplete(ctx, viewerIdFromContext(ctx))
	if err != nil {
		log.Error("db error", logging.DbErr("CountIncomplete", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	return &pb.IncompleteCountResponse{Count: count}, nil
}

func (s *TrackerService) SearchTasks(ctx context.Context, req *pb.SearchTasksRequest) (*pb.SearchTasksResponse, error) {
	records, err := s.searchRecords(ctx, models.KindTask, req.GetQuery())
	if err != nil {
		return nil, err
	}

	tasks := make([]*pb.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, taskToPb(rec))
	}
	return &pb.SearchTasksResponse{Tasks: tasks}, nil
}

func (s *TrackerService) SearchProjects(ctx context.Context, req *pb.SearchProjectsRequest) (*pb.SearchProjectsResponse, error) {
	records, err := s.searchRecords(ctx, models.KindProject, req.GetQuery())
	if err != nil {
		return nil, err
	}

	projects := make([]*pb.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, projectToPb(rec))
	}
	return &pb.SearchProjectsResponse{Projects: projects}, nil
}

func (s *TrackerService) searchRecords(ctx context.Context, kind models.Kind, query string) ([]*models.Record, error) {
	log := contextkeys.GetLogger(ctx)

	query = processText(query)
	if query == "" {
		log.Error("empty query")
		return nil, status.Error(codes.InvalidArgument, ErrInvalidQueryMessage)
	}

	records, err := s.search.Search(ctx, kind, viewerIdFromContext(ctx), query)
	if err != nil {
		log.Error("es error", logging.EsErr("Search", err))
		return nil, status.Error(codes.Internal, ErrInternalMessage)
	}

	return records, nil
}

// afterWrite propagates one applied store write: live feed first, then the
// search index, then the activity event. Index and event failures are
// logged, never surfaced — the store already accepted the write.
func (s *TrackerService) afterWrite(ctx context.Context, typ watch.EventType, rec *models.Record, actor *authz.Actor, eventType string) {
	log := contextkeys.GetLogger(ctx)

	s.hub.Publish(typ, rec)

	asyncCtx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
	defer cancel()

	if typ == watch.Removed {
		if err := s.search.DeleteRecord(asyncCtx, rec.Id); err != nil {
			log.Error("es error", logging.EsErr("DeleteRecord", err))
		}
	} else {
		if err := s.search.IndexRecord(asyncCtx, rec); err != nil {
			log.Error("es error", logging.EsErr("IndexRecord", err))
		}
	}

	if actor.Email == "" {
		return
	}

	err := s.events.SendEventEmail(asyncCtx, &models.EventMessage{
		Email:    actor.Email,
		Username: actor.Username,
		Type:     eventType,
		Kind:     string(rec.Kind),
		Label:    rec.Label,
		Link:     rec.Link,
	})
	if err != nil {
		log.Error("kafka error", "email", actor.Email, logging.Err(err))
	} else {
		log.Info("kafka event message sent", "email", actor.Email, "event-type", eventType)
	}
}

func actorFromContext(ctx context.Context) *authz.Actor {
	claims, ok := contextkeys.GetTokenClaims(ctx)
	if !ok {
		return nil
	}
	return &authz.Actor{UserId: claims.UserId, Username: claims.Username, Email: claims.Email}
}

// viewerIdFromContext maps anonymous callers to viewer id 0, which owns
// nothing.
func viewerIdFromContext(ctx context.Context) int64 {
	claims, ok := contextkeys.GetTokenClaims(ctx)
	if !ok {
		return 0
	}
	return claims.UserId
}

func textIsValid(text string, limits config.MinMaxLen) bool {
	return len(text) >= limits.Min && len(text) <= limits.Max
}

func processText(text string) string {
	return strings.TrimSpace(text)
}
