package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calebms7/shepherd-backend/internal/infra/database"
	"github.com/calebms7/shepherd-backend/internal/infra/delivery"
	"github.com/calebms7/shepherd-backend/internal/infra/http/handlers"
	"github.com/calebms7/shepherd-backend/internal/infra/http/middleware"
	"github.com/calebms7/shepherd-backend/internal/infra/mail"
	"github.com/calebms7/shepherd-backend/internal/infra/queue"
	"github.com/calebms7/shepherd-backend/internal/infra/sms"
	"github.com/calebms7/shepherd-backend/internal/infra/worker"
	"github.com/calebms7/shepherd-backend/internal/usecase"
	"github.com/calebms7/shepherd-backend/internal/workflow"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	contactRepo := database.NewContactRepository(db)
	visitorRepo := database.NewVisitorRepository(db)
	memberRepo := database.NewMemberRepository(db)
	soulRepo := database.NewSoulWinningRepository(db)
	followUpRepo := database.NewFollowUpRepository(db)
	auditRepo := database.NewAuditRepository(db)
	templateRepo := database.NewTemplateRepository(db)

	// Side-effect plumbing
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	auditWriter := usecase.NewAuditWriter(auditRepo)

	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"),
		envOrInt("MAIL_PORT", 587),
		os.Getenv("MAIL_USER"),
		os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@church.local"),
	)
	smsClient := sms.NewClient(os.Getenv("SMS_GATEWAY_URL"), os.Getenv("SMS_ACCESS_TOKEN"))
	deliverer := delivery.NewRouter(mailSender, smsClient)

	// Use cases
	lifecycleUC := usecase.NewLifecycleUseCase(contactRepo, visitorRepo, memberRepo, auditWriter, producer)
	conversionUC := usecase.NewConversionUseCase(soulRepo, lifecycleUC, auditWriter)
	contactUC := usecase.NewContactUseCase(contactRepo, auditWriter)
	soulUC := usecase.NewSoulWinningUseCase(soulRepo, contactRepo, auditWriter)
	followUpUC := usecase.NewFollowUpUseCase(followUpRepo, contactRepo, auditWriter)
	bulkUC := usecase.NewBulkCoordinator(followUpUC, conversionUC)

	// Workflow dispatcher + workers
	dispatcher := workflow.NewDispatcher(
		contactRepo,
		templateRepo,
		followUpRepo,
		deliverer,
		envOr("CHURCH_NAME", "Shepherd Church"),
	)
	queueWorker := queue.NewWorker(rabbitMQ.Ch, meteredDispatcher{dispatcher})
	go queueWorker.Start(queue.QueueName)

	reminderWorker := worker.NewReminderWorker(followUpRepo, contactRepo, producer)
	go reminderWorker.Start(context.Background())

	// Handlers
	contactHandler := handlers.NewContactHandler(contactUC, lifecycleUC)
	soulHandler := handlers.NewSoulWinningHandler(soulUC, conversionUC)
	followUpHandler := handlers.NewFollowUpHandler(followUpUC)
	bulkHandler := handlers.NewBulkHandler(bulkUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/contacts", contactHandler.Create)
	r.Get("/contacts/{id}", contactHandler.Get)
	r.Put("/contacts/{id}", contactHandler.Update)
	r.Delete("/contacts/{id}", contactHandler.Delete)
	r.Post("/contacts/{id}/visit", contactHandler.PromoteToVisitor)
	r.Delete("/contacts/{id}/visit", contactHandler.RemoveVisit)
	r.Post("/contacts/{id}/membership", contactHandler.PromoteToMember)
	r.Delete("/contacts/{id}/membership", contactHandler.RemoveMembership)

	r.Post("/soul-winning", soulHandler.Create)
	r.Delete("/soul-winning/{id}", soulHandler.Delete)
	r.Post("/soul-winning/{id}/convert", soulHandler.Convert)

	r.Post("/follow-ups", followUpHandler.Create)
	r.Post("/follow-ups/{id}/complete", followUpHandler.Complete)
	r.Post("/follow-ups/{id}/cancel", followUpHandler.Cancel)
	r.Post("/follow-ups/{id}/assign", followUpHandler.Assign)
	r.Delete("/follow-ups/{id}", followUpHandler.Delete)

	r.Post("/bulk", bulkHandler.Handle)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("shepherd backend listening on %s", port)
	http.ListenAndServe(port, r)
}

// meteredDispatcher adapts the workflow dispatcher for the queue worker and
// records the outcome of every dispatch.
type meteredDispatcher struct {
	d *workflow.Dispatcher
}

func (m meteredDispatcher) Handle(ctx context.Context, evt queue.WorkflowEvent) error {
	res := m.d.Dispatch(ctx, evt)
	middleware.RecordWorkflowDispatch(evt.Type, string(res.Status))
	if res.Status == workflow.StatusFailed {
		return errors.New(res.Reason)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
