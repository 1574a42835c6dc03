package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/longevity-index-server/internal/domain"
)

const (
	defaultEutilsBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"
	articleURLFormat     = "https://pubmed.ncbi.nlm.nih.gov/%s/"

	// Every query gets this suffix so results stay in the longevity space.
	querySuffix = "longevity aging lifespan"
)

// PubMedClient handles interactions with NCBI PubMed via E-utilities.
// It is a best-effort enrichment source: every failure degrades to an
// empty reference list and is never surfaced to the caller.
type PubMedClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
	maxResults int
	maxURLs    int
}

// NewPubMedClient creates a new PubMed E-utilities client
func NewPubMedClient(config domain.PubMedConfig, logger *logrus.Logger) *PubMedClient {
	if config.BaseURL == "" {
		config.BaseURL = defaultEutilsBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 3 // NCBI courtesy limit without an API key
	}
	if config.MaxResults == 0 {
		config.MaxResults = 5
	}
	if config.MaxURLs == 0 {
		config.MaxURLs = 3
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pubmed",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &PubMedClient{
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(config.RateLimit), 1),
		breaker:    breaker,
		logger:     logger,
		maxResults: config.MaxResults,
		maxURLs:    config.MaxURLs,
	}
}

// SearchResult makes the swallowed-failure path explicit: Err records why a
// lookup came back empty but is never propagated past this package.
type SearchResult struct {
	URLs []string
	Err  error
}

// esearchResponse models the subset of the esearch JSON reply we read
type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search implements domain.LiteratureSearcher. The query gets the fixed
// longevity suffix appended; the first maxURLs result IDs are mapped to
// canonical article URLs. Any failure returns an empty list.
func (p *PubMedClient) Search(ctx context.Context, query string) []string {
	result := p.Lookup(ctx, query)
	if result.Err != nil {
		p.logger.WithError(result.Err).WithField("query", query).Warn("PubMed lookup failed, continuing without references")
		return []string{}
	}
	return result.URLs
}

// Lookup performs the search and reports the outcome, including the
// recorded-but-swallowed error, for callers and tests that want to see it.
func (p *PubMedClient) Lookup(ctx context.Context, query string) SearchResult {
	ids, err := p.breaker.Execute(func() (interface{}, error) {
		return p.searchArticleIDs(ctx, query)
	})
	if err != nil {
		return SearchResult{URLs: []string{}, Err: err}
	}

	pmids := ids.([]string)
	if len(pmids) > p.maxURLs {
		pmids = pmids[:p.maxURLs]
	}

	urls := make([]string, 0, len(pmids))
	for _, pmid := range pmids {
		urls = append(urls, fmt.Sprintf(articleURLFormat, pmid))
	}
	return SearchResult{URLs: urls}
}

// searchArticleIDs performs the esearch call and returns raw PMIDs
func (p *PubMedClient) searchArticleIDs(ctx context.Context, query string) ([]string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {fmt.Sprintf("%s %s", query, querySuffix)},
		"retmax":  {fmt.Sprintf("%d", p.maxResults)},
		"retmode": {"json"},
	}
	if p.apiKey != "" {
		params.Set("api_key", p.apiKey)
	}

	fullURL := fmt.Sprintf("%sesearch.fcgi?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubMed search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var searchResponse esearchResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	return searchResponse.ESearchResult.IDList, nil
}
