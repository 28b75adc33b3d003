//go:build wireinject
// +build wireinject

package wire

import (
	"dms-server/internal/formbuilder/communication"
	"dms-server/internal/formbuilder/httpapi"
	"dms-server/internal/formbuilder/persistence"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/async"

	"github.com/google/wire"
)

var SchemaSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	persistence.NewSchemaStore,
	wire.Bind(new(usecases.SchemaStore), new(*persistence.SimpleSchemaStore)),
	persistence.NewSchemaIntrospector,
	wire.Bind(new(usecases.SchemaIntrospector), new(*persistence.SimpleSchemaIntrospector)),
	provideCache,
	provideFormRepository,
	wire.Bind(new(usecases.FormRepository), new(*persistence.CachedFormRepository)),
)

var EventSet = wire.NewSet(
	providePubSubFactory,
	providePublisherFactory,
	communication.NewEventPublisher,
	wire.Bind(new(usecases.EventPublisher), new(*communication.EventPublisher)),
)

var FormRegistryServiceSet = wire.NewSet(
	SchemaSet,
	EventSet,
	provideAuthorizer,
	usecases.NewFormRegistryService,
	wire.Bind(new(usecases.FormRegistryService), new(*usecases.SimpleFormRegistryService)),
)

func InitializeFormController() (*httpapi.FormController, error) {
	wire.Build(
		FormRegistryServiceSet,
		httpapi.NewFormController,
	)
	return nil, nil
}

func InitializeRecordController() (*httpapi.RecordController, error) {
	wire.Build(
		SchemaSet,
		EventSet,
		provideAuthorizer,
		provideRecordService,
		wire.Bind(new(usecases.RecordService), new(*usecases.SimpleRecordService)),
		httpapi.NewRecordController,
	)
	return nil, nil
}

func InitializeRecordFeedWebSocketController(broker async.InternalBroker) (*httpapi.RecordFeedWebSocketController, error) {
	wire.Build(
		FormRegistryServiceSet,
		httpapi.NewRecordFeedWebSocketController,
	)
	return nil, nil
}

func InitializeRecordFeedRelay(broker async.InternalBroker) (*communication.RecordFeedRelay, error) {
	wire.Build(
		provideAppConfig,
		providePubSubFactory,
		provideConsumerFactory,
		communication.NewRecordFeedRelay,
	)
	return nil, nil
}

func InitializeOrphanFormSweeper() (*usecases.OrphanFormSweeper, error) {
	wire.Build(
		SchemaSet,
		EventSet,
		provideSweeperSchedule,
		usecases.NewOrphanFormSweeper,
	)
	return nil, nil
}
