package signal

// UserActivity is one user's run-scoped activity record.
type UserActivity struct {
	Username     string `json:"username"`
	PostCount    int    `json:"post_count"`
	MentionCount int    `json:"mention_count"`
}

// Accumulator holds the run-scoped counters built while processing a
// batch of posts. Workers may each fill a private Accumulator and Merge
// them afterwards; merges sum by key, so worker order does not matter.
type Accumulator struct {
	Keywords   map[string]int
	Tags       map[string]int
	Mentions   map[string]int
	PostCounts map[string]int

	userOrder []string
	userSeen  map[string]struct{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		Keywords:   make(map[string]int),
		Tags:       make(map[string]int),
		Mentions:   make(map[string]int),
		PostCounts: make(map[string]int),
		userSeen:   make(map[string]struct{}),
	}
}

func (a *Accumulator) seeUser(username string) {
	if _, ok := a.userSeen[username]; ok {
		return
	}
	a.userSeen[username] = struct{}{}
	a.userOrder = append(a.userOrder, username)
}

// AddPost records the author and extracts mentions and keywords from the
// post's HTML body.
func (a *Accumulator) AddPost(username, cookedHTML string) {
	if username != "" {
		a.seeUser(username)
		a.PostCounts[username]++
	}

	text := StripTags(cookedHTML)

	for _, mention := range Mentions(text) {
		a.seeUser(mention)
		a.Mentions[mention]++
	}
	for _, keyword := range Keywords(text) {
		a.Keywords[keyword]++
	}
}

// AddTopicTags counts tags from topic metadata.
func (a *Accumulator) AddTopicTags(tags []string) {
	for _, tag := range tags {
		a.Tags[tag]++
	}
}

// Merge folds another accumulator into this one, summing counts by key.
// Commutative and associative up to user order, which follows the merge
// sequence.
func (a *Accumulator) Merge(other *Accumulator) {
	for k, v := range other.Keywords {
		a.Keywords[k] += v
	}
	for k, v := range other.Tags {
		a.Tags[k] += v
	}
	for k, v := range other.Mentions {
		a.Mentions[k] += v
	}
	for k, v := range other.PostCounts {
		a.PostCounts[k] += v
	}
	for _, username := range other.userOrder {
		a.seeUser(username)
	}
}

// Users returns one activity record per distinct username (authors and
// mentioned users alike) in first-seen order.
func (a *Accumulator) Users() []UserActivity {
	users := make([]UserActivity, 0, len(a.userOrder))
	for _, username := range a.userOrder {
		users = append(users, UserActivity{
			Username:     username,
			PostCount:    a.PostCounts[username],
			MentionCount: a.Mentions[username],
		})
	}
	return users
}
