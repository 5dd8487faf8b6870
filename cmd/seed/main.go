// Command seed stores the sample profile through the admin save pipeline.
//
//	seed             create or refresh the sample profile
//	seed -hash pwd   print a bcrypt hash for an auth.admins entry
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"profilecard/config"
	"profilecard/internal/domain/repository"
	"profilecard/internal/errors"
	"profilecard/internal/infra/auth"
	logs "profilecard/internal/infra/log"
	"profilecard/internal/infra/persistence/postgres"
	"profilecard/internal/infra/pubsub"
	"profilecard/internal/infra/storage"
	"profilecard/internal/usecase"
	"profilecard/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultBcryptCost = 12

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger      *slog.Logger
	ProfileRepo repository.ProfileRepository
	AdminUC     usecase.AdminProfileUsecase
}

func main() {
	password := flag.String("hash", "", "print the bcrypt hash of this password and exit")
	cost := flag.Int("cost", defaultBcryptCost, "bcrypt cost used with -hash")
	flag.Parse()

	if *password != "" {
		hash, err := auth.NewBcryptHasherWithCost(*cost).Hash(*password)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)

		return
	}

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewProfileRepository,
			postgres.NewTransactionManager,
			storage.NewImageStorage,
			pubsub.NewEventPublisher,
			impl.NewAdminProfileService,
		),
		fx.Invoke(registerSeed),
		fx.NopLogger,
	).Run()
}

// registerSeed runs after the database hooks so migrations are already applied.
func registerSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := seed(context.Background(), params); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}

func seed(ctx context.Context, params seedParams) error {
	input := &usecase.SaveProfileInput{Profile: sampleProfile()}

	existing, err := params.ProfileRepo.FindByUsername(ctx, input.Profile.Username)
	switch {
	case err == nil:
		id := existing.Profile.ID
		input.ID = &id
	case !errors.Is(err, repository.ErrProfileNotFound):
		return err
	}

	result, err := params.AdminUC.SaveProfile(ctx, input)
	if err != nil {
		return err
	}

	params.Logger.Info("Sample profile saved",
		slog.String("profile_id", result.ID.String()),
		slog.Bool("created", result.Created),
		slog.String("username", input.Profile.Username),
	)

	return nil
}

func sampleProfile() usecase.ProfileInput {
	return usecase.ProfileInput{
		Username:     "alexmorgan",
		Name:         "Alex Morgan",
		Tagline:      "Creative Designer & Digital Strategist",
		Bio:          "Passionate about creating beautiful digital experiences that connect brands with their audiences. Specializing in UI/UX design, branding, and digital marketing strategies.",
		ProfileImage: "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=400",
		CoverImage:   "https://images.pexels.com/photos/1103970/pexels-photo-1103970.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Location: usecase.LocationInput{
			Address: "123 Creative Street, Suite 456",
			City:    "San Francisco",
			Country: "USA",
		},
		SocialLinks: []usecase.SocialLinkInput{
			{Platform: "instagram", URL: "https://instagram.com/alexmorgan", Username: "@alexmorgan"},
			{Platform: "linkedin", URL: "https://linkedin.com/in/alexmorgan", Username: "Alex Morgan"},
			{Platform: "email", URL: "mailto:alex@example.com", Username: "alex@example.com"},
			{Platform: "twitter", URL: "https://twitter.com/alexmorgan", Username: "@alexmorgan"},
			{Platform: "whatsapp", URL: "https://wa.me/1234567890", Username: "+1 (234) 567-890"},
		},
		Services: []usecase.ServiceInput{
			{Name: "UI/UX Design", Description: "Complete user interface and experience design for web and mobile applications", Price: "From $2,500"},
			{Name: "Brand Identity", Description: "Logo design, brand guidelines, and complete visual identity packages", Price: "From $1,500"},
			{Name: "Digital Strategy", Description: "Comprehensive digital marketing and growth strategy consultation", Price: "From $500/hour"},
			{Name: "Web Development", Description: "Full-stack web development with modern frameworks and technologies"},
		},
		BusinessHours: []usecase.BusinessHourInput{
			{Day: "Monday", Hours: "9:00 AM - 6:00 PM", IsOpen: true},
			{Day: "Tuesday", Hours: "9:00 AM - 6:00 PM", IsOpen: true},
			{Day: "Wednesday", Hours: "9:00 AM - 6:00 PM", IsOpen: true},
			{Day: "Thursday", Hours: "9:00 AM - 6:00 PM", IsOpen: true},
			{Day: "Friday", Hours: "9:00 AM - 5:00 PM", IsOpen: true},
			{Day: "Saturday", Hours: "By Appointment", IsOpen: false},
			{Day: "Sunday", Hours: "Closed", IsOpen: false},
		},
		Gallery: []string{
			"https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/1779487/pexels-photo-1779487.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/3183153/pexels-photo-3183153.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/3182825/pexels-photo-3182825.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/196643/pexels-photo-196643.jpeg?auto=compress&cs=tinysrgb&w=400",
			"https://images.pexels.com/photos/3183197/pexels-photo-3183197.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
	}
}
