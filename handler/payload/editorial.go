package payload

import (
	"time"

	"github.com/blogbuster/database"
)

type GuidePickResponse struct {
	Title        string `json:"title"`
	Verdict      string `json:"verdict"`
	Tagline      string `json:"tagline"`
	Pros         string `json:"pros"`
	Cons         string `json:"cons"`
	PriceRange   string `json:"price_range"`
	AffiliateURL string `json:"affiliate_url"`
	Rating       uint8  `json:"rating"`
}

type GuideResponse struct {
	UUID      string              `json:"uuid"`
	Title     string              `json:"title"`
	Slug      string              `json:"slug"`
	Summary   string              `json:"summary"`
	HeroQuote string              `json:"hero_quote"`
	Featured  bool                `json:"featured"`
	Category  *CategoryResponse   `json:"category"`
	Picks     []GuidePickResponse `json:"picks"`
	CreatedAt time.Time           `json:"created_at"`
}

type ReviewScoreResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type ReviewResponse struct {
	UUID         string                `json:"uuid"`
	ProductName  string                `json:"product_name"`
	Slug         string                `json:"slug"`
	Summary      string                `json:"summary"`
	Verdict      string                `json:"verdict"`
	AffiliateURL string                `json:"affiliate_url"`
	HeroImage    string                `json:"hero_image"`
	OverallScore float64               `json:"overall_score"`
	Pros         string                `json:"pros"`
	Cons         string                `json:"cons"`
	WhyTrustUs   string                `json:"why_trust_us"`
	Methodology  string                `json:"methodology"`
	Featured     bool                  `json:"featured"`
	Scores       []ReviewScoreResponse `json:"scores"`
	PublishedAt  *time.Time            `json:"published_at"`
}

type HowToStepResponse struct {
	StepNumber   uint   `json:"step_number"`
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Tip          string `json:"tip"`
}

type HowToResponse struct {
	UUID          string              `json:"uuid"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Intro         string              `json:"intro"`
	Difficulty    string              `json:"difficulty"`
	EstimatedTime string              `json:"estimated_time"`
	Prerequisites string              `json:"prerequisites"`
	Featured      bool                `json:"featured"`
	Steps         []HowToStepResponse `json:"steps"`
	CreatedAt     time.Time           `json:"created_at"`
}

type QuickTipResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func GetGuideResponse(g database.BuyingGuide) GuideResponse {
	picks := make([]GuidePickResponse, 0, len(g.Picks))

	for _, pick := range g.Picks {
		picks = append(picks, GuidePickResponse{
			Title:        pick.Title,
			Verdict:      pick.Verdict,
			Tagline:      pick.Tagline,
			Pros:         pick.Pros,
			Cons:         pick.Cons,
			PriceRange:   pick.PriceRange,
			AffiliateURL: pick.AffiliateURL,
			Rating:       pick.Rating,
		})
	}

	return GuideResponse{
		UUID:      g.UUID,
		Title:     g.Title,
		Slug:      g.Slug,
		Summary:   g.Summary,
		HeroQuote: g.HeroQuote,
		Featured:  g.Featured,
		Category:  GetCategoryResponse(g.Category),
		Picks:     picks,
		CreatedAt: g.CreatedAt,
	}
}

func GetReviewResponse(r database.ProductReview) ReviewResponse {
	scores := make([]ReviewScoreResponse, 0, len(r.Scores))

	for _, score := range r.Scores {
		scores = append(scores, ReviewScoreResponse{Label: score.Label, Score: score.Score})
	}

	return ReviewResponse{
		UUID:         r.UUID,
		ProductName:  r.ProductName,
		Slug:         r.Slug,
		Summary:      r.Summary,
		Verdict:      r.Verdict,
		AffiliateURL: r.AffiliateURL,
		HeroImage:    r.HeroImage,
		OverallScore: r.OverallScore,
		Pros:         r.Pros,
		Cons:         r.Cons,
		WhyTrustUs:   r.WhyTrustUs,
		Methodology:  r.Methodology,
		Featured:     r.Featured,
		Scores:       scores,
		PublishedAt:  r.PublishedAt,
	}
}

func GetHowToResponse(h database.HowToSeries) HowToResponse {
	steps := make([]HowToStepResponse, 0, len(h.Steps))

	for _, step := range h.Steps {
		steps = append(steps, HowToStepResponse{
			StepNumber:   step.StepNumber,
			Title:        step.Title,
			Instructions: step.Instructions,
			Tip:          step.Tip,
		})
	}

	return HowToResponse{
		UUID:          h.UUID,
		Title:         h.Title,
		Slug:          h.Slug,
		Intro:         h.Intro,
		Difficulty:    string(h.Difficulty),
		EstimatedTime: h.EstimatedTime,
		Prerequisites: h.Prerequisites,
		Featured:      h.Featured,
		Steps:         steps,
		CreatedAt:     h.CreatedAt,
	}
}

func GetQuickTipsResponse(tips []database.QuickTip) []QuickTipResponse {
	data := make([]QuickTipResponse, 0, len(tips))

	for _, tip := range tips {
		data = append(data, QuickTipResponse{Title: tip.Title, Description: tip.Description})
	}

	return data
}

// MapAll applies mapper to every item, never returning nil.
func MapAll[S any, D any](items []S, mapper func(S) D) []D {
	data := make([]D, 0, len(items))

	for _, item := range items {
		data = append(data, mapper(item))
	}

	return data
}
