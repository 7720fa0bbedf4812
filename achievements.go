package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var achievementHTTPClient = &http.Client{Timeout: 15 * time.Second}

// GetSteamAchievements scrapes the public achievements page of a profile
// for one app. Fails when the profile is private or the page shape changes;
// the caller decides whether that matters.
func GetSteamAchievements(ctx context.Context, steamID string, appID int) ([]Achievement, error) {
	if steamID == "" || appID == 0 {
		return nil, fmt.Errorf("steam id and app id are required")
	}

	url := fmt.Sprintf("https://steamcommunity.com/profiles/%s/stats/%d/?tab=achievements", steamID, appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := achievementHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching achievements page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("achievements page returned status %d", resp.StatusCode)
	}

	return parseAchievementsPage(resp.Body)
}

// parseAchievementsPage extracts unlock records from the community page
// markup: one .achieveRow per achievement, title in .achieveTxt h3,
// description in .achieveTxt h5, unlock time in .achieveUnlockTime, icon in
// .achieveImgHolder img.
func parseAchievementsPage(r io.Reader) ([]Achievement, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing achievements page: %w", err)
	}

	achievements := []Achievement{}
	for _, row := range findAllByClass(doc, "achieveRow") {
		var a Achievement

		if txt := findFirstByClass(row, "achieveTxt"); txt != nil {
			if h3 := findFirstByTag(txt, "h3"); h3 != nil {
				a.Title = nodeText(h3)
			}
			if h5 := findFirstByTag(txt, "h5"); h5 != nil {
				a.Description = nodeText(h5)
			}
		}

		unlockTime := ""
		if t := findFirstByClass(row, "achieveUnlockTime"); t != nil {
			unlockTime = nodeText(t)
		}
		a.Unlocked = unlockTime != ""
		if a.Unlocked {
			a.UnlockTime = unlockTime
		}

		if holder := findFirstByClass(row, "achieveImgHolder"); holder != nil {
			if img := findFirstByTag(holder, "img"); img != nil {
				a.Image = attrVal(img, "src")
			}
		}

		achievements = append(achievements, a)
	}

	return achievements, nil
}

func nodeHasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func findAllByClass(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if nodeHasClass(n, class) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findFirstByClass(n *html.Node, class string) *html.Node {
	if nodeHasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirstByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func findFirstByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirstByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
