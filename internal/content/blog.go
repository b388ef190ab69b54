// Package content loads blog posts from markdown files and holds the
// studio's project portfolio.
package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

var frontMatterDelim = []byte("---")

// Post is a rendered blog post.
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Series      string
	Project     string
	Draft       bool
	HTML        template.HTML
}

type frontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Series      string   `yaml:"series"`
	Project     string   `yaml:"project"`
	Draft       bool     `yaml:"draft"`
}

// Blog is an in-memory, date-sorted set of posts.
type Blog struct {
	posts  []Post
	bySlug map[string]int
}

// LoadBlog reads every .md file in dir. Drafts are dropped unless
// includeDrafts is set. A missing directory yields an empty blog.
func LoadBlog(ctx context.Context, dir string, includeDrafts bool) (*Blog, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return newBlog(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blog dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".md" {
			names = append(names, e.Name())
		}
	}

	posts := make([]Post, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := readPost(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			posts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := posts[:0]
	for _, p := range posts {
		if p.Draft && !includeDrafts {
			continue
		}
		kept = append(kept, p)
	}
	return newBlog(kept), nil
}

func newBlog(posts []Post) *Blog {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Slug < posts[j].Slug
		}
		return posts[i].Date.After(posts[j].Date)
	})
	b := &Blog{posts: posts, bySlug: make(map[string]int, len(posts))}
	for i, p := range posts {
		b.bySlug[p.Slug] = i
	}
	return b
}

func readPost(path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("read post: %w", err)
	}
	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := parsePost(slug, raw)
	if err != nil {
		return Post{}, fmt.Errorf("post %s: %w", slug, err)
	}
	return p, nil
}

func parsePost(slug string, raw []byte) (Post, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return Post{}, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return Post{}, fmt.Errorf("front matter: %w", err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return Post{}, errors.New("front matter: title is required")
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(fm.Date))
	if err != nil {
		return Post{}, fmt.Errorf("front matter: date must be YYYY-MM-DD: %w", err)
	}

	return Post{
		Slug:        slug,
		Title:       fm.Title,
		Date:        date,
		Description: fm.Description,
		Tags:        fm.Tags,
		Series:      fm.Series,
		Project:     fm.Project,
		Draft:       fm.Draft,
		HTML:        template.HTML(blackfriday.Run(body)),
	}, nil
}

func splitFrontMatter(raw []byte) (meta, body []byte, err error) {
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(raw, frontMatterDelim) {
		return nil, nil, errors.New("missing front matter")
	}
	rest := raw[len(frontMatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return nil, nil, errors.New("unterminated front matter")
	}
	meta = rest[:end]
	body = rest[end+1+len(frontMatterDelim):]
	return meta, bytes.TrimLeft(body, "\n"), nil
}

// Posts returns all posts, newest first.
func (b *Blog) Posts() []Post {
	return b.posts
}

// Latest returns up to n of the newest posts.
func (b *Blog) Latest(n int) []Post {
	if n > len(b.posts) {
		n = len(b.posts)
	}
	return b.posts[:n]
}

// Post looks up a post by slug.
func (b *Blog) Post(slug string) (Post, bool) {
	i, ok := b.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return b.posts[i], true
}

// Filter returns posts carrying tag and belonging to series. Empty
// arguments match everything.
func (b *Blog) Filter(tag, series string) []Post {
	var out []Post
	for _, p := range b.posts {
		if series != "" && p.Series != series {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ForProject returns posts linked to a project slug.
func (b *Blog) ForProject(slug string) []Post {
	var out []Post
	for _, p := range b.posts {
		if p.Project == slug {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns every tag in use, sorted.
func (b *Blog) Tags() []string {
	seen := map[string]struct{}{}
	for _, p := range b.posts {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Series returns every series name in use, sorted.
func (b *Blog) Series() []string {
	seen := map[string]struct{}{}
	for _, p := range b.posts {
		if p.Series != "" {
			seen[p.Series] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func hasTag(p Post, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
