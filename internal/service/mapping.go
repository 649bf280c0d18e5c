package service

import (
	pb "tracker-grpc/api/proto/gen"
	"tracker-grpc/internal/models"
	"tracker-grpc/internal/watch"
)

func taskToPb(rec *models.Record) *pb.Task {
	return &pb.Task{
		Id:        rec.Id,
		Label:     rec.Label,
		Link:      rec.Link,
		OwnerId:   rec.OwnerId,
		OwnerName: rec.OwnerName,
		CreatedAt: rec.CreatedAt.Unix(),
		Checked:   rec.Checked,
		Private:   rec.Private,
	}
}

func projectToPb(rec *models.Record) *pb.Project {
	return &pb.Project{
		Id:        rec.Id,
		Project:   rec.Label,
		Link:      rec.Link,
		OwnerId:   rec.OwnerId,
		OwnerName: rec.OwnerName,
		CreatedAt: rec.CreatedAt.Unix(),
		Checked:   rec.Checked,
		Private:   rec.Private,
	}
}

func eventTypeToPb(typ watch.EventType) pb.EventType {
	switch typ {
	case watch.Added:
		return pb.EventType_EVENT_TYPE_ADDED
	case watch.Changed:
		return pb.EventType_EVENT_TYPE_CHANGED
	case watch.Removed:
		return pb.EventType_EVENT_TYPE_REMOVED
	}
	return pb.EventType_EVENT_TYPE_UNSPECIFIED
}

func taskEventToPb(ev watch.Event) *pb.TaskEvent {
	out := &pb.TaskEvent{
		Type:   eventTypeToPb(ev.Type),
		TaskId: ev.Record.Id,
	}
	if ev.Type != watch.Removed {
		out.Task = taskToPb(ev.Record)
	}
	return out
}

func projectEventToPb(ev watch.Event) *pb.ProjectEvent {
	out := &pb.ProjectEvent{
		Type:      eventTypeToPb(ev.Type),
		ProjectId: ev.Record.Id,
	}
	if ev.Type != watch.Removed {
		out.Project = projectToPb(ev.Record)
	}
	return out
}
