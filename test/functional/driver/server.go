package driver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"time"

	"dms-server/internal/formbuilder/communication"
	"dms-server/internal/formbuilder/export"
	"dms-server/internal/formbuilder/httpapi"
	"dms-server/internal/formbuilder/persistence"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/async"
	"dms-server/internal/infra/cache"
	"dms-server/internal/infra/httpserver"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/infra/sql"
	"dms-server/internal/shared_kernel/authz"
	"dms-server/internal/shared_kernel/avro"

	"github.com/google/uuid"
)

var _roles = map[string][]string{
	"viewer": {"Form:edit"},
	"editor": {"Form:add", "Form:edit"},
	"admin":  {"*"},
}

// Server runs the whole API in process on top of a private in-memory
// database, so every scenario starts from an empty catalog.
type Server struct {
	*httptest.Server
	broker *async.LocalBroker
	feed   *httpapi.RecordFeedWebSocketController
	cancel context.CancelFunc
}

func StartServer() (*Server, error) {
	orm, err := sql.NewMemoryORM()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	repository, err := persistence.NewFormRepository(orm)
	if err != nil {
		return nil, fmt.Errorf("creating form repository: %w", err)
	}
	forms := persistence.NewCachedFormRepository(repository, store, time.Minute)

	factory, err := pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:   pubsub.EnvironmentLocal,
		ConsumerGroup: "dms-server-functional-" + uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating pubsub: %w", err)
	}
	publisher, err := communication.NewEventPublisher(factory.GetPublisherFactory())
	if err != nil {
		return nil, fmt.Errorf("creating event publisher: %w", err)
	}

	schemaStore := persistence.NewSchemaStore(orm)
	introspector := persistence.NewSchemaIntrospector(orm)
	authorizer := authz.NewRoleAuthorizer("admin", _roles)

	formService := usecases.NewFormRegistryService(forms, schemaStore, introspector, publisher, authorizer)
	recordService := usecases.NewRecordService(forms, schemaStore, introspector, publisher, authorizer,
		export.NewXLSXRenderer(),
		export.NewPDFRenderer(),
	)

	broker := async.NewLocalBroker()
	feed := httpapi.NewRecordFeedWebSocketController(broker, formService)

	// The in-memory pubsub broker is shared by every server of the run. A
	// private consumer group keeps each relay on its own copy of the events.
	ctx, cancel := context.WithCancel(context.Background())
	relay := communication.NewRecordFeedRelay(factory.GetConsumerFactory(), broker)
	err = factory.NewConsumer().Consume(ctx, communication.FormEventsTopic, relay.Handle, avro.AvroFormEvent{})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribing record feed relay: %w", err)
	}

	server := httpserver.NewServer(
		httpserver.ServerOptions{},
		httpapi.NewFormController(formService),
		httpapi.NewRecordController(recordService),
		feed,
	)

	return &Server{
		Server: httptest.NewServer(server.Handler()),
		broker: broker,
		feed:   feed,
		cancel: cancel,
	}, nil
}

func (s *Server) Close() {
	s.cancel()
	s.feed.Shutdown()
	s.Server.Close()
	s.broker.Stop()
}
