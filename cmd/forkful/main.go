package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/forkful/forkful-client/config"
	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/controller"
	"github.com/forkful/forkful-client/internal/session"
	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/types"
	"github.com/forkful/forkful-client/internal/upload"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fileStore, err := session.OpenFileStore(cfg.StateDir)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	sessions := session.NewManager(fileStore)
	api := client.New(cfg.APIBaseURL, cfg.HTTPTimeout, sessions)
	st := store.New()

	if err := run(ctx, os.Args[1], os.Args[2:], cfg, sessions, api, st); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, command string, args []string, cfg *config.Config, sessions *session.Manager, api *client.Client, st *store.Store) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		identifier := fs.String("user", "", "username or email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		auth := controller.NewAuthController(api, sessions)
		user, err := auth.Login(ctx, *identifier, *password)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", user.Username)
		return nil

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		image := fs.String("image", "", "avatar image URL")
		_ = fs.Parse(args)

		auth := controller.NewAuthController(api, sessions)
		user, err := auth.Register(ctx, types.RegisterRequest{
			Username: *username,
			Email:    *email,
			Password: *password,
			Image:    *image,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Registered as %s\n", user.Username)
		return nil

	case "logout":
		auth := controller.NewAuthController(api, sessions)
		if err := auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil

	case "explore":
		fs := flag.NewFlagSet("explore", flag.ExitOnError)
		pages := fs.Int("pages", 1, "number of pages to load")
		_ = fs.Parse(args)

		st.Bootstrap(ctx, api, sessions, cfg.PageSize)
		explore := controller.NewExploreController(api, st, nil, cfg.PageSize)
		for i := 1; i < *pages; i++ {
			if err := explore.LoadNextPage(ctx); err != nil {
				return err
			}
		}
		printRecipes(st.Snapshot())
		return nil

	case "daily":
		daily := controller.NewDailyController(api, st, config.FeaturedPageSize)
		recipe, err := daily.LoadFeatured(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Daily recipe: %s — %s (by %s)\n", recipe.Title, recipe.Description, recipe.Creator.Name)
		return nil

	case "like", "unlike":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		id := fs.String("id", "", "recipe id")
		_ = fs.Parse(args)
		if *id == "" {
			return fmt.Errorf("-id is required")
		}

		explore := controller.NewExploreController(api, st, nil, cfg.PageSize)
		if command == "like" {
			if err := explore.Like(ctx, *id); err != nil {
				return err
			}
			fmt.Println("Liked")
		} else {
			if err := explore.Unlike(ctx, *id); err != nil {
				return err
			}
			fmt.Println("Unliked")
		}
		return nil

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		title := fs.String("title", "", "recipe title")
		description := fs.String("description", "", "recipe description")
		prep := fs.Int("prep", 0, "preparation minutes")
		cook := fs.Int("cook", 0, "cooking minutes")
		servings := fs.Int("servings", 1, "servings")
		ingredients := fs.String("ingredients", "", "comma-separated amount:name pairs")
		steps := fs.String("steps", "", "semicolon-separated steps")
		photo := fs.String("photo", "", "path to a local photo to upload")
		_ = fs.Parse(args)

		var uploader controller.PhotoUploader
		if *photo != "" {
			s3cfg, err := config.NewS3Config(ctx)
			if err != nil {
				return fmt.Errorf("photo upload unavailable: %w", err)
			}
			uploader = upload.NewPhotoUploader(s3cfg)
		}

		explore := controller.NewExploreController(api, st, uploader, cfg.PageSize)
		recipe, err := explore.CreateRecipe(ctx, types.NewRecipeInput{
			Title:       *title,
			Description: *description,
			PrepMinutes: *prep,
			CookMinutes: *cook,
			Servings:    *servings,
			Ingredients: parseIngredients(*ingredients),
			Steps:       parseSteps(*steps),
		}, *photo)
		if err != nil {
			return err
		}
		fmt.Printf("Created recipe %s (%s)\n", recipe.Title, recipe.ID)
		return nil

	case "show":
		fs := flag.NewFlagSet("show", flag.ExitOnError)
		id := fs.String("id", "", "recipe id")
		_ = fs.Parse(args)
		if *id == "" {
			return fmt.Errorf("-id is required")
		}

		details := controller.NewDetailsController(api, sessions, st, *id)
		recipe, err := details.Open(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s — %s (by %s, %d likes)\n", recipe.Title, recipe.Description, recipe.Creator.Name, recipe.Likes)
		for _, ing := range recipe.Ingredients {
			fmt.Printf("  - %s %s\n", ing.Amount, ing.Name)
		}
		for i, step := range recipe.Steps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
		for _, comment := range details.Comments() {
			fmt.Printf("  %s: %s\n", comment.Author.Name, comment.Text)
		}
		return nil

	case "comment":
		fs := flag.NewFlagSet("comment", flag.ExitOnError)
		id := fs.String("id", "", "recipe id")
		text := fs.String("text", "", "comment text")
		_ = fs.Parse(args)
		if *id == "" || *text == "" {
			return fmt.Errorf("-id and -text are required")
		}

		details := controller.NewDetailsController(api, sessions, st, *id)
		if _, err := details.Open(ctx); err != nil {
			return err
		}
		comment, err := details.PostComment(ctx, *text)
		if err != nil {
			return err
		}
		fmt.Printf("Comment %s posted\n", comment.ID)
		return nil

	case "suggest":
		fs := flag.NewFlagSet("suggest", flag.ExitOnError)
		query := fs.String("q", "", "describe what you want to cook")
		_ = fs.Parse(args)

		suggester := client.NewSuggester(cfg.AIBackendURL, cfg.HTTPTimeout, cfg.HTTPTimeout)
		suggest := controller.NewSuggestController(suggester, st)
		recipes, err := suggest.Suggest(ctx, *query)
		if err != nil {
			return err
		}
		for _, r := range recipes {
			fmt.Printf("%s — %s\n", r.Title, r.Description)
		}
		return nil

	case "profile":
		profile := controller.NewProfileController(api, sessions, st)
		p, err := profile.Load(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", p.User.Username, p.User.Email)
		fmt.Printf("Recipes: %d, liked: %d\n", len(p.Recipes), len(p.Liked))
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printRecipes(state store.State) {
	for _, r := range state.Recipes {
		fmt.Printf("%s — %s (by %s, %d likes)\n", r.Title, r.Description, r.Creator.Name, r.Likes)
	}
}

func parseIngredients(raw string) []types.Ingredient {
	if raw == "" {
		return nil
	}
	var out []types.Ingredient
	for _, pair := range strings.Split(raw, ",") {
		amount, name, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			name = amount
			amount = ""
		}
		out = append(out, types.Ingredient{Amount: amount, Name: name})
	}
	return out
}

func parseSteps(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, step := range strings.Split(raw, ";") {
		if step = strings.TrimSpace(step); step != "" {
			out = append(out, step)
		}
	}
	return out
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: forkful <command> [flags]

Commands:
  login      -user -password
  register   -username -email -password [-image]
  logout
  explore    [-pages]
  daily
  show       -id
  like       -id
  unlike     -id
  create     -title -description [-prep -cook -servings -ingredients -steps -photo]
  comment    -id -text
  suggest    -q
  profile`)
}
