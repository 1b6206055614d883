package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchFilter builds the owner-scoped list filter shared by notes and
// bookmarks. The user_id clause is unconditional: every query a handler can
// issue is confined to the authenticated user's documents.
//
// A non-empty term becomes a case-insensitive substring match ($or across
// the given fields); the term is escaped so regex metacharacters in user
// input match literally. A non-empty tag list requires the document to
// carry every requested tag.
func SearchFilter(userID, term string, tags []string, fields []string) bson.M {
	filter := bson.M{"user_id": userID}

	if term != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		or := make([]bson.M, 0, len(fields))
		for _, field := range fields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}

	if len(tags) > 0 {
		filter["tags"] = bson.M{"$all": tags}
	}

	return filter
}

// newestFirst sorts list results by creation time, descending.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
