package forum

// Category is a Discourse forum category as returned by categories.json.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TopicCount   int    `json:"topic_count"`
	PostCount    int    `json:"post_count"`
	LastPostedAt string `json:"last_posted_at"`
}

// Topic is a forum topic summary. Timestamps stay as the raw ISO-8601
// strings the forum returns; parsing is lenient and happens downstream.
type Topic struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Views        int      `json:"views"`
	PostsCount   int      `json:"posts_count"`
	CreatedAt    string   `json:"created_at"`
	LastPostedAt string   `json:"last_posted_at"`
	Pinned       bool     `json:"pinned"`
	Tags         []string `json:"tags,omitempty"`
	CategoryID   int      `json:"category_id"`

	// ReferendumID links the topic to an on-chain referendum when the
	// fetch layer could associate one (tag or title reference). Zero
	// means no association.
	ReferendumID int `json:"referendum_id,omitempty"`
}

// Post is a single forum post. Cooked holds the rendered HTML body.
type Post struct {
	ID        int    `json:"id"`
	TopicID   int    `json:"topic_id"`
	Username  string `json:"username"`
	Cooked    string `json:"cooked"`
	CreatedAt string `json:"created_at"`
}

type categoriesResponse struct {
	CategoryList struct {
		Categories []Category `json:"categories"`
	} `json:"category_list"`
}

type topicListResponse struct {
	TopicList struct {
		Topics []Topic `json:"topics"`
	} `json:"topic_list"`
}

type topicDetailResponse struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Views      int      `json:"views"`
	PostsCount int      `json:"posts_count"`
	CreatedAt  string   `json:"created_at"`
	Tags       []string `json:"tags"`
	PostStream struct {
		Posts []Post `json:"posts"`
	} `json:"post_stream"`
}

// TopicDetail is a topic with its tags and full post stream.
type TopicDetail struct {
	Topic
	Posts []Post
}
