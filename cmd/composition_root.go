package cmd

import (
	"context"
	"log/slog"

	"concierge/internal/adapters/out/llm"
	"concierge/internal/adapters/out/supabase"
	"concierge/internal/adapters/out/supabase/bookingrepo"
	"concierge/internal/adapters/out/supabase/housekeepingrepo"
	"concierge/internal/adapters/out/supabase/menurepo"
	"concierge/internal/adapters/out/supabase/orderrepo"
	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/domain/services"
	"concierge/internal/jobs"
)

// CompositionRoot wires adapters to use cases. Both binaries build one root
// and pull their handlers from it.
type CompositionRoot struct {
	orders   *orderrepo.Repository
	menu     *menurepo.Repository
	bookings *bookingrepo.Repository

	schedules *housekeepingrepo.Repository

	logger *slog.Logger
}

// NewCompositionRoot builds the remote-store gateway and every repository.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := supabase.NewClient(supabase.Config{
		BaseURL: config.SupabaseURL,
		APIKey:  config.SupabaseKey,
	}, logger)
	if err != nil {
		return nil, err
	}

	orders, err := orderrepo.NewRepository(client)
	if err != nil {
		return nil, err
	}
	schedules, err := housekeepingrepo.NewRepository(client)
	if err != nil {
		return nil, err
	}
	menu, err := menurepo.NewRepository(client)
	if err != nil {
		return nil, err
	}
	bookings, err := bookingrepo.NewRepository(client)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		orders:    orders,
		menu:      menu,
		bookings:  bookings,
		schedules: schedules,
		logger:    logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.menu, c.bookings)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateUpdateHousekeepingStatusCommandHandler() commands.UpdateHousekeepingStatusCommandHandler {
	return commands.NewUpdateHousekeepingStatusCommandHandler(c.schedules)
}

func (c *CompositionRoot) CreateSetRoomCleanlinessCommandHandler() commands.SetRoomCleanlinessCommandHandler {
	return commands.NewSetRoomCleanlinessCommandHandler(c.schedules)
}

func (c *CompositionRoot) CreatePlaceServiceOrderCommandHandler() commands.PlaceServiceOrderCommandHandler {
	return commands.NewPlaceServiceOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateCompleteRoomServiceCommandHandler() commands.CompleteRoomServiceCommandHandler {
	return commands.NewCompleteRoomServiceCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menu)
}

func (c *CompositionRoot) CreateGetRoomServiceOrdersQueryHandler() queries.GetRoomServiceOrdersQueryHandler {
	return queries.NewGetRoomServiceOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetHousekeepingScheduleQueryHandler() queries.GetHousekeepingScheduleQueryHandler {
	return queries.NewGetHousekeepingScheduleQueryHandler(c.schedules)
}

func (c *CompositionRoot) CreateRoomStatusSummaryQueryHandler() queries.RoomStatusSummaryQueryHandler {
	return queries.NewRoomStatusSummaryQueryHandler(c.orders, c.schedules)
}

// CreateCommandInterpreter builds the interpreter over the room-level
// command handlers.
func (c *CompositionRoot) CreateCommandInterpreter() (*services.CommandInterpreter, error) {
	actions := &interpreterActions{
		setRoomCleanliness:  c.CreateSetRoomCleanlinessCommandHandler(),
		placeServiceOrder:   c.CreatePlaceServiceOrderCommandHandler(),
		completeRoomService: c.CreateCompleteRoomServiceCommandHandler(),
	}
	return services.NewCommandInterpreter(actions)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRoomStatusSummaryQueryHandler(), c.logger)
}

// CreateAssistant builds the Groq-backed assistant.
func (c *CompositionRoot) CreateAssistant(apiKey string) (*llm.GroqClient, error) {
	return llm.NewGroqClient(apiKey)
}

// interpreterActions adapts the command handlers to the interpreter's
// Actions port.
type interpreterActions struct {
	setRoomCleanliness  commands.SetRoomCleanlinessCommandHandler
	placeServiceOrder   commands.PlaceServiceOrderCommandHandler
	completeRoomService commands.CompleteRoomServiceCommandHandler
}

func (a *interpreterActions) SetRoomCleanliness(ctx context.Context, roomID int, state string) (int, error) {
	cmd, err := commands.NewSetRoomCleanlinessCommand(roomID, state)
	if err != nil {
		return 0, err
	}
	return a.setRoomCleanliness.Handle(ctx, cmd)
}

func (a *interpreterActions) PlaceServiceOrder(ctx context.Context, roomID int, serviceType string) error {
	cmd, err := commands.NewPlaceServiceOrderCommand(roomID, serviceType)
	if err != nil {
		return err
	}
	_, err = a.placeServiceOrder.Handle(ctx, cmd)
	return err
}

func (a *interpreterActions) CompleteRoomService(ctx context.Context, roomID int) (int, error) {
	cmd, err := commands.NewCompleteRoomServiceCommand(roomID)
	if err != nil {
		return 0, err
	}
	return a.completeRoomService.Handle(ctx, cmd)
}
