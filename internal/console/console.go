// Package console implements the interactive menu front-end. It owns all
// user-facing text and input retry logic; ranking is delegated to the
// recommendation service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davidbz/genrerec/internal/catalog"
	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
)

// errInputClosed signals that the input stream ended mid-dialogue.
var errInputClosed = errors.New("input closed")

type menuEntry struct {
	label   string
	catalog string
	noun    string
}

//nolint:gochecknoglobals // fixed menu layout
var menu = []menuEntry{
	{label: "Get Movie Recommendations", catalog: catalog.Movies, noun: "movie"},
	{label: "Get Book Recommendations", catalog: catalog.Books, noun: "book"},
}

// Console runs the menu loop over a reader and writer.
type Console struct {
	recommender *domain.RecommendationService
	catalogs    domain.CatalogRegistry
	topN        int
}

// NewConsole creates a new console front-end (DI constructor).
func NewConsole(recommender *domain.RecommendationService, catalogs domain.CatalogRegistry, topN int) *Console {
	return &Console{
		recommender: recommender,
		catalogs:    catalogs,
		topN:        topN,
	}
}

// Run loops over the menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := &session{scanner: bufio.NewScanner(in), out: out}
	exit := strconv.Itoa(len(menu) + 1)

	for {
		s.println("\n=== Recommendation System ===")
		for i, entry := range menu {
			s.printf("%d. %s\n", i+1, entry.label)
		}
		s.printf("%s. Exit\n", exit)

		choice, err := s.prompt(fmt.Sprintf("\nEnter your choice (1-%s): ", exit))
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == exit {
			s.println("Thank you for using the recommendation system!")
			return nil
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(menu) {
			s.println("Invalid choice. Please try again.")
			continue
		}

		if err := c.recommend(ctx, s, menu[n-1]); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
	}
}

func (c *Console) recommend(ctx context.Context, s *session, entry menuEntry) error {
	ctx = observability.WithCatalog(ctx, entry.catalog)

	cat, err := c.catalogs.Get(ctx, entry.catalog)
	if err != nil {
		observability.FromContext(ctx).Warn("catalog unavailable", observability.Error(err))
		s.println("No recommendations found.")
		return nil
	}

	s.printf("\nAvailable %ss:\n", entry.noun)
	for i, title := range cat.Titles() {
		s.printf("%d. %s\n", i+1, title)
	}

	count, err := s.promptCount(
		fmt.Sprintf("\nHow many %ss would you like to base your recommendations on? ", entry.noun),
		cat.Len(),
	)
	if err != nil {
		return err
	}

	seeds := make([]string, 0, count)
	for i := range count {
		title, err := s.promptTitle(fmt.Sprintf("\nEnter %s %d: ", entry.noun, i+1), cat)
		if err != nil {
			return err
		}
		seeds = append(seeds, title)
	}

	result := c.recommender.Aggregate(ctx, cat, seeds, c.topN)
	Display(s.out, result.Recommendations)
	return nil
}

// Display prints a ranked list with 1-based numbering and two-decimal scores.
func Display(out io.Writer, recommendations []domain.Recommendation) {
	if len(recommendations) == 0 {
		fmt.Fprintln(out, "No recommendations found.")
		return
	}

	fmt.Fprintln(out, "\nRecommended items:")
	for i, rec := range recommendations {
		fmt.Fprintf(out, "%d. %s (Similarity: %.2f)\n", i+1, rec.Title, rec.Score)
	}
}

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (s *session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// promptCount re-prompts until an integer in [0, limit] is entered.
func (s *session) promptCount(text string, limit int) (int, error) {
	for {
		answer, err := s.prompt(text)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil && n >= 0 && n <= limit {
			return n, nil
		}
		s.printf("Please enter a whole number between 0 and %d.\n", limit)
	}
}

// promptTitle re-prompts until an exact catalog title is entered.
func (s *session) promptTitle(text string, cat *domain.Catalog) (string, error) {
	for {
		answer, err := s.prompt(text)
		if err != nil {
			return "", err
		}
		if cat.Contains(answer) {
			return answer, nil
		}
		s.println("Invalid input. Please choose from available items.")
	}
}
