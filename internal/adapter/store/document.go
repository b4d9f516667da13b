package store

import (
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
)

// Document is a schemaless user document.
type Document map[string]interface{}

// Field names of the persisted user document.
const (
	fieldGithubUsername  = "github_username"
	fieldPoints          = "points"
	fieldPointsBreakdown = "points_breakdown"
	fieldAccountAge      = "account_age"
	fieldFollowers       = "followers"
	fieldRepoCount       = "repo_count"
	fieldLastUpdated     = "last_updated"
)

// userDocument converts user record into document fields.
func userDocument(rec app.UserRecord) Document {
	return Document{
		fieldGithubUsername: rec.GithubUsername,
		fieldPoints:         rec.Points,
		fieldPointsBreakdown: Document{
			fieldAccountAge: rec.PointsBreakdown.AccountAge,
			fieldFollowers:  rec.PointsBreakdown.Followers,
			fieldRepoCount:  rec.PointsBreakdown.RepoCount,
		},
		fieldLastUpdated: rec.LastUpdated.UTC().Format(time.RFC3339Nano),
	}
}

// mergeDocuments merges src into dst. Nested documents are merged key by key,
// other values in src replace values in dst. Keys missing in src are left untouched.
func mergeDocuments(dst Document, src Document) Document {
	if dst == nil {
		dst = Document{}
	}

	for k, v := range src {
		srcDoc, srcIsDoc := asDocument(v)
		dstDoc, dstIsDoc := asDocument(dst[k])
		if srcIsDoc && dstIsDoc {
			dst[k] = mergeDocuments(dstDoc, srcDoc)
			continue
		}
		if srcIsDoc {
			dst[k] = mergeDocuments(Document{}, srcDoc)
			continue
		}
		dst[k] = v
	}

	return dst
}

// flattenDocument returns a single level map with nested keys joined by a dot.
func flattenDocument(doc Document) map[string]interface{} {
	out := make(map[string]interface{})
	flattenInto(out, "", doc)
	return out
}

func flattenInto(out map[string]interface{}, prefix string, doc Document) {
	for k, v := range doc {
		if prefix != "" {
			k = prefix + "." + k
		}
		if nested, ok := asDocument(v); ok {
			flattenInto(out, k, nested)
			continue
		}
		out[k] = v
	}
}

func asDocument(v interface{}) (Document, bool) {
	switch d := v.(type) {
	case Document:
		return d, true
	case map[string]interface{}:
		return Document(d), true
	}
	return nil, false
}
