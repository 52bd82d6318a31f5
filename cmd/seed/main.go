package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/model"
	"blogpessoal/internal/repo/persistent"
	"blogpessoal/internal/usecase"
	"blogpessoal/pkg/config"
	"blogpessoal/pkg/database"
	"blogpessoal/pkg/jwt"
	"blogpessoal/pkg/logger"

	"gorm.io/gorm"
)

type seedUser struct {
	name     string
	username string
	password string
}

type seedPost struct {
	author string
	theme  string
	title  string
	text   string
}

var (
	testUsers = []seedUser{
		{"Ana Souza", "ana@blogpessoal.dev", "password123"},
		{"Bruno Lima", "bruno@blogpessoal.dev", "password123"},
	}

	testThemes = []string{"Programação", "Viagens", "Culinária"}

	testPosts = []seedPost{
		{"ana@blogpessoal.dev", "Programação", "Primeiros passos com Go", "Anotações sobre goroutines, canais e o modelo de erros."},
		{"ana@blogpessoal.dev", "Viagens", "Um fim de semana em Ouro Preto", "Ladeiras, igrejas barrocas e um pão de queijo excelente."},
		{"bruno@blogpessoal.dev", "Culinária", "Feijoada de domingo", "A receita da família, com as quantidades para oito pessoas."},
	}
)

func main() {
	var env string
	flag.StringVar(&env, "env", "", "database target (PROD or LOCAL), overrides ENVIRONMENT_START")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if env != "" {
		cfg.Environment = strings.ToUpper(env)
	}

	log := logger.New()
	db, err := database.Open(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	if err := model.AutoMigrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	if err := seedDatabase(context.Background(), db, jwt.NewService(cfg.JWTSecret), log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase inserts demo users, themes and posts. Records that already
// exist are reused, so running it twice changes nothing.
func seedDatabase(ctx context.Context, db *gorm.DB, tokens usecase.TokenIssuer, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	themeRepo := persistent.NewThemeRepository(db)
	postRepo := persistent.NewPostRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, nil, log)
	themeUseCase := usecase.NewThemeUseCase(themeRepo, log)
	postUseCase := usecase.NewPostUseCase(postRepo, log)

	userIDs := make(map[string]string, len(testUsers))
	for _, u := range testUsers {
		existing, err := userRepo.GetByUsername(ctx, u.username)
		if err == nil {
			log.Info("User %s already exists, skipping", u.username)
			userIDs[u.username] = existing.ID
			continue
		}
		if !errors.Is(err, persistent.ErrNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", u.username, err)
		}

		user, _, err := authUseCase.Register(ctx, usecase.UserInput{
			Name:     u.name,
			Username: u.username,
			Password: u.password,
		})
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		log.Info("Created user: %s", u.username)
		userIDs[u.username] = user.ID
	}

	themeIDs := make(map[string]string, len(testThemes))
	for _, description := range testThemes {
		theme, err := findTheme(ctx, themeUseCase, description)
		if err != nil {
			return err
		}
		if theme == nil {
			if theme, err = themeUseCase.CreateTheme(ctx, description); err != nil {
				return fmt.Errorf("failed to create theme %s: %w", description, err)
			}
			log.Info("Created theme: %s", description)
		}
		themeIDs[description] = theme.ID
	}

	for _, p := range testPosts {
		existing, err := postUseCase.SearchPosts(ctx, p.title)
		if err != nil {
			return fmt.Errorf("failed to look up post %q: %w", p.title, err)
		}
		if containsPost(existing, p.title, userIDs[p.author]) {
			log.Info("Post %q already exists, skipping", p.title)
			continue
		}

		if _, err := postUseCase.CreatePost(ctx, userIDs[p.author], usecase.PostInput{
			Title:   p.title,
			Text:    p.text,
			ThemeID: themeIDs[p.theme],
		}); err != nil {
			return fmt.Errorf("failed to create post %q: %w", p.title, err)
		}
		log.Info("Created post: %s", p.title)
	}

	return nil
}

func findTheme(ctx context.Context, themes usecase.ThemeUseCase, description string) (*entity.Theme, error) {
	matches, err := themes.SearchThemes(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to look up theme %s: %w", description, err)
	}
	for _, theme := range matches {
		if theme.Description == description {
			return theme, nil
		}
	}
	return nil, nil
}

func containsPost(posts []*entity.Post, title, userID string) bool {
	for _, post := range posts {
		if post.Title == title && post.UserID == userID {
			return true
		}
	}
	return false
}
