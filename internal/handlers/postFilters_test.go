package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAllJobsFilterDefault(t *testing.T) {
	filter := allJobsFilter("")
	assert.Equal(t, bson.M{
		"admissionLink": bson.M{"$elemMatch": bson.M{"link": ""}},
	}, filter)
}

func TestAllJobsFilterSearchReplacesDefault(t *testing.T) {
	filter := allJobsFilter("ssc")
	assert.Equal(t, bson.M{
		"$or": []bson.M{
			{"postName": bson.M{"$regex": "ssc", "$options": "i"}},
			{"description": bson.M{"$regex": "ssc", "$options": "i"}},
			{"state": bson.M{"$regex": "ssc", "$options": "i"}},
		},
	}, filter)
}

func TestByStateFilter(t *testing.T) {
	filter := byStateFilter("", "")
	assert.Equal(t, bson.M{"state": bson.M{"$exists": true, "$ne": ""}}, filter)

	filter = byStateFilter("Bihar", "police")
	assert.Equal(t, bson.M{
		"state":    "Bihar",
		"postName": bson.M{"$regex": "police", "$options": "i"},
	}, filter)
}

func TestLinkFilter(t *testing.T) {
	filter := linkFilter("admitCardLink", "")
	assert.Equal(t, bson.M{
		"admitCardLink": bson.M{"$elemMatch": bson.M{"link": bson.M{"$ne": ""}}},
	}, filter)

	filter = linkFilter("admitCardLink", "ssc")
	assert.Equal(t, bson.M{
		"admitCardLink": bson.M{"$elemMatch": bson.M{"link": bson.M{"$ne": ""}}},
		"postName":      bson.M{"$regex": "ssc", "$options": "i"},
	}, filter)
}

func TestAdmissionLinkFilter(t *testing.T) {
	filter := admissionLinkFilter("neet")
	assert.Equal(t, bson.M{
		"admissionLink": bson.M{"$elemMatch": bson.M{"link": bson.M{"$ne": ""}}},
		"$or": []bson.M{
			{"postName": bson.M{"$regex": "neet", "$options": "i"}},
			{"description": bson.M{"$regex": "neet", "$options": "i"}},
		},
	}, filter)
}

func TestUpcomingFilter(t *testing.T) {
	assert.Equal(t, bson.M{
		"applyLink":     bson.M{"$elemMatch": bson.M{"link": ""}},
		"admissionLink": bson.M{"$elemMatch": bson.M{"link": ""}},
	}, upcomingFilter())
}

func TestByNameFilter(t *testing.T) {
	assert.Equal(t, bson.M{"postName": bson.M{"$exists": true}}, byNameFilter(""))
	assert.Equal(t, bson.M{"postName": "SSC CGL 2025"}, byNameFilter("SSC CGL 2025"))
}
