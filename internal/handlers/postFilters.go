package handlers

import "go.mongodb.org/mongo-driver/bson"

// searchRegex builds the case-insensitive substring matcher used by
// every list endpoint.
func searchRegex(query string) bson.M {
	return bson.M{"$regex": query, "$options": "i"}
}

// allJobsFilter is the main listing filter. Without a search it shows
// posts whose admissionLink still carries an empty link entry, which
// keeps concluded admissions off the front page. A search replaces the
// default view entirely and matches across name, description and state.
func allJobsFilter(searchQuery string) bson.M {
	if searchQuery != "" {
		return bson.M{"$or": []bson.M{
			{"postName": searchRegex(searchQuery)},
			{"description": searchRegex(searchQuery)},
			{"state": searchRegex(searchQuery)},
		}}
	}
	return bson.M{"admissionLink": bson.M{"$elemMatch": bson.M{"link": ""}}}
}

func byStateFilter(state, postName string) bson.M {
	filter := bson.M{"state": bson.M{"$exists": true, "$ne": ""}}
	if state != "" {
		filter["state"] = state
	}
	if postName != "" {
		filter["postName"] = searchRegex(postName)
	}
	return filter
}

// linkFilter selects posts where the given link field has at least one
// populated entry. postName narrows the result when non-empty.
func linkFilter(field, postName string) bson.M {
	filter := bson.M{field: bson.M{"$elemMatch": bson.M{"link": bson.M{"$ne": ""}}}}
	if postName != "" {
		filter["postName"] = searchRegex(postName)
	}
	return filter
}

func admissionLinkFilter(searchQuery string) bson.M {
	filter := bson.M{"admissionLink": bson.M{"$elemMatch": bson.M{"link": bson.M{"$ne": ""}}}}
	if searchQuery != "" {
		filter["$or"] = []bson.M{
			{"postName": searchRegex(searchQuery)},
			{"description": searchRegex(searchQuery)},
		}
	}
	return filter
}

// upcomingFilter selects posts that have neither an apply link nor an
// admission link yet.
func upcomingFilter() bson.M {
	return bson.M{
		"applyLink":     bson.M{"$elemMatch": bson.M{"link": ""}},
		"admissionLink": bson.M{"$elemMatch": bson.M{"link": ""}},
	}
}

func byNameFilter(postName string) bson.M {
	if postName == "" {
		return bson.M{"postName": bson.M{"$exists": true}}
	}
	return bson.M{"postName": postName}
}
