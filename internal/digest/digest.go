// Package digest orchestrates one analysis run: collect the batch from
// the forum and chain collaborators, extract signals, score, correlate,
// and assemble the report.
package digest

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"dotdigest/config"
	"dotdigest/internal/chain"
	"dotdigest/internal/forum"
	"dotdigest/internal/report"
	"dotdigest/internal/score"
	"dotdigest/internal/signal"
	"dotdigest/internal/store"
)

// Batch is the finite set of records one run analyzes. Fully collected
// before any scoring begins; immutable afterwards.
type Batch struct {
	Categories []forum.Category         `json:"categories"`
	Topics     []forum.Topic            `json:"topics"`
	Posts      []forum.Post             `json:"posts"`
	Referenda  []chain.Referendum       `json:"referenda"`
	Treasury   []chain.TreasuryProposal `json:"treasury"`
}

type Pipeline struct {
	forumClient *forum.Client
	chainClient *chain.Client
	db          *store.Store
	cfg         *config.Config
	logger      *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) (*Pipeline, error) {
	forumClient, err := forum.NewClient(cfg.Forum.BaseURL)
	if err != nil {
		return nil, err
	}

	chainClient, err := chain.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	db, err := store.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		forumClient: forumClient,
		chainClient: chainClient,
		db:          db,
		cfg:         cfg,
		logger:      logger,
	}, nil
}

func (p *Pipeline) Close() error {
	return p.db.Close()
}

// Analyze derives the full report from a collected batch. Pure: the same
// batch and clock always produce the same report.
func Analyze(batch Batch, baseURL string, now time.Time) *report.Report {
	acc := signal.NewAccumulator()
	for _, t := range batch.Topics {
		acc.AddTopicTags(t.Tags)
	}
	for _, post := range batch.Posts {
		acc.AddPost(post.Username, post.Cooked)
	}

	return report.Assemble(report.Input{
		Categories: batch.Categories,
		Topics:     batch.Topics,
		Posts:      batch.Posts,
		Referenda:  batch.Referenda,
		Treasury:   batch.Treasury,
		BaseURL:    baseURL,
	}, acc, now)
}

// Run collects a fresh batch, analyzes it, and persists the report to
// the store and the output directory.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	now := time.Now()

	batch := p.Collect(ctx)
	rep := Analyze(batch, p.forumClient.BaseURL(), now)

	if rep.NoData() {
		p.logger.Warn("nothing to analyze this run")
	}

	data, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}
	if err := p.db.SaveRun(ctx, rep.GeneratedAt, data); err != nil {
		p.logger.Error("failed to store digest run", zap.Error(err))
	}

	path, err := rep.Save(p.cfg.Digest.OutputDir, "forum analysis", now)
	if err != nil {
		p.logger.Error("failed to export report", zap.Error(err))
	} else {
		p.logger.Info("report exported", zap.String("path", path))
	}

	return rep, nil
}

// Collect gathers the run's batch. Collaborator failures degrade to an
// empty slice for that record type; the analysis still runs over
// whatever arrived.
func (p *Pipeline) Collect(ctx context.Context) Batch {
	var batch Batch

	p.collectForum(ctx, &batch)

	referenda, err := p.chainClient.Referenda(ctx)
	if err != nil {
		p.logger.Error("failed to fetch referenda", zap.Error(err))
	} else {
		batch.Referenda = referenda
	}

	treasury, err := p.chainClient.Treasury(ctx)
	if err != nil {
		p.logger.Error("failed to fetch treasury proposals", zap.Error(err))
	} else {
		batch.Treasury = treasury
	}

	p.logger.Info("batch collected",
		zap.Int("categories", len(batch.Categories)),
		zap.Int("topics", len(batch.Topics)),
		zap.Int("posts", len(batch.Posts)),
		zap.Int("referenda", len(batch.Referenda)),
		zap.Int("treasury", len(batch.Treasury)))

	return batch
}

// wait sleeps for the rate-limit delay, returning false as soon as the
// context is canceled.
func wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func (p *Pipeline) collectForum(ctx context.Context, batch *Batch) {
	delay := time.Duration(p.cfg.Forum.RateLimitSecs) * time.Second

	categories, err := p.forumClient.Categories()
	if err != nil {
		p.logger.Error("failed to fetch categories", zap.Error(err))
		return
	}
	if len(categories) > p.cfg.Forum.MaxCategories {
		categories = categories[:p.cfg.Forum.MaxCategories]
	}
	batch.Categories = categories

	for _, category := range categories {
		count := 0
		for page := 0; count < p.cfg.Forum.MaxTopicsPerCategory; page++ {
			topics, err := p.forumClient.CategoryTopics(category.ID, page)
			if err != nil {
				p.logger.Warn("failed to fetch topics",
					zap.Int("category_id", category.ID), zap.Error(err))
				break
			}
			if len(topics) == 0 {
				break
			}
			batch.Topics = append(batch.Topics, topics...)
			count += len(topics)
			if !wait(ctx, delay) {
				return
			}
		}
		p.logger.Debug("category crawled",
			zap.String("category", category.Name), zap.Int("topics", count))
	}

	// Detail-fetch the most engaging topics to get tags and post streams.
	ranked := make([]int, len(batch.Topics))
	for i := range batch.Topics {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return score.Engagement(batch.Topics[ranked[a]]) > score.Engagement(batch.Topics[ranked[b]])
	})
	if len(ranked) > p.cfg.Forum.MaxTopicDetails {
		ranked = ranked[:p.cfg.Forum.MaxTopicDetails]
	}

	for _, i := range ranked {
		topic := &batch.Topics[i]
		detail, err := p.forumClient.Topic(topic.ID)
		if err != nil {
			p.logger.Warn("failed to fetch topic detail",
				zap.Int("topic_id", topic.ID), zap.Error(err))
			continue
		}
		topic.Tags = detail.Tags
		topic.ReferendumID = referendumAssociation(*topic)
		batch.Posts = append(batch.Posts, detail.Posts...)
		if !wait(ctx, delay) {
			return
		}
	}
}

var (
	refTagRe   = regexp.MustCompile(`^referendum-(\d+)$`)
	refTitleRe = regexp.MustCompile(`(?i)referendum\s*#(\d+)`)
)

// referendumAssociation looks for an explicit referendum reference in a
// topic's tags or title. Zero means no association.
func referendumAssociation(t forum.Topic) int {
	for _, tag := range t.Tags {
		if m := refTagRe.FindStringSubmatch(tag); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil {
				return id
			}
		}
	}
	if m := refTitleRe.FindStringSubmatch(t.Title); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			return id
		}
	}
	return 0
}
