package app

import (
	"context"
	"log/slog"
	"net"
	"time"

	pb "tracker-grpc/api/proto/gen"
	"tracker-grpc/internal/config"
	"tracker-grpc/internal/elasticsearch"
	"tracker-grpc/internal/interceptors"
	"tracker-grpc/internal/kafka"
	"tracker-grpc/internal/service"
	"tracker-grpc/internal/storage"
	"tracker-grpc/internal/watch"
	"tracker-grpc/pkg/logging"

	"google.golang.org/grpc"
)

var reindexTimeout = time.Minute

type Server struct {
	cfg            *config.Config
	gs             *grpc.Server
	log            *slog.Logger
	trackerService *service.TrackerService
	eventProducer  *kafka.EventProducer
	hub            *watch.Hub
}

func NewServer(cfg *config.Config, log *slog.Logger) *Server {
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingInterceptor(log),
			interceptors.AuthUnaryInterceptor(cfg.JWTSecret, log),
		),
		grpc.ChainStreamInterceptor(
			interceptors.LoggingStreamInterceptor(log),
			interceptors.AuthStreamInterceptor(cfg.JWTSecret, log),
		),
	)

	var db service.TrackerStorage
	switch cfg.DB.Driver {
	case "memory":
		db = storage.NewMemoryStorage(cfg.SuperuserName)
	default:
		p := cfg.DB
		pg, err := storage.NewPostgresStorage(p.Host, p.Port, p.User, p.Password, p.DBName, cfg.SuperuserName, log)
		if err != nil {
			panic(err)
		}
		db = pg
	}

	search, err := elasticsearch.NewClient(cfg.Elastic.Addresses, cfg.Elastic.Index, log)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), reindexTimeout)
	defer cancel()

	records, err := db.AllRecords(ctx)
	if err != nil {
		panic(err)
	}
	if err := search.Reindex(ctx, records); err != nil {
		log.Error("search reindex error", logging.Err(err))
	}

	eventProducer := kafka.NewEventProducer(&cfg.Kafka)
	hub := watch.NewHub()

	trackerService := service.NewTrackerService(cfg, log, db, search, eventProducer, hub)

	return &Server{
		cfg:            cfg,
		gs:             gs,
		log:            log,
		trackerService: trackerService,
		eventProducer:  eventProducer,
		hub:            hub,
	}
}

func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.cfg.TrackerAddress)
	if err != nil {
		return err
	}

	pb.RegisterTrackerServiceServer(s.gs, s.trackerService)

	return s.gs.Serve(ln)
}

func (s *Server) Close() {
	s.gs.GracefulStop()
	s.hub.Close()
	s.eventProducer.Close()
}
