package service

import (
	"context"
	"log/slog"

	pb "tracker-grpc/api/proto/gen"
	"tracker-grpc/internal/contextkeys"
	"tracker-grpc/internal/models"
	"tracker-grpc/internal/watch"
	"tracker-grpc/pkg/logging"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *TrackerService) WatchTasks(req *pb.WatchTasksRequest, stream pb.TrackerService_WatchTasksServer) error {
	return s.watchKind(stream.Context(), models.KindTask, func(ev watch.Event) error {
		return stream.Send(taskEventToPb(ev))
	})
}

func (s *TrackerService) WatchProjects(req *pb.WatchProjectsRequest, stream pb.TrackerService_WatchProjectsServer) error {
	return s.watchKind(stream.Context(), models.KindProject, func(ev watch.Event) error {
		return stream.Send(projectEventToPb(ev))
	})
}

func (s *TrackerService) watchKind(ctx context.Context, kind models.Kind, send func(watch.Event) error) error {
	log := contextkeys.GetLogger(ctx).With(slog.String("kind", string(kind)))
	viewerId := viewerIdFromContext(ctx)

	// Subscribe before reading the snapshot so no mutation lands between
	// the two unseen. An event can then duplicate a snapshot row; clients
	// treat ADDED as an upsert.
	sub := s.hub.Subscribe(kind, viewerId)
	defer s.hub.Unsubscribe(sub)

	snapshot, err := s.db.ListVisible(ctx, kind, viewerId)
	if err != nil {
		log.Error("db error", logging.DbErr("ListVisible", err))
		return status.Error(codes.Internal, ErrInternalMessage)
	}

	for _, rec := range snapshot {
		if err := send(watch.Event{Type: watch.Added, Record: rec}); err != nil {
			return err
		}
	}

	log.Info("watch snapshot sent", slog.Int("count", len(snapshot)))

	for {
		select {
		case <-ctx.Done():
			log.Info("watch closed by viewer")
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				log.Warn("subscriber dropped for lagging")
				return status.Error(codes.Unavailable, "subscription lagging, re-subscribe")
			}
			if err := send(ev); err != nil {
				return err
			}
		}
	}
}
