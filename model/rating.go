package model

// ApplyRating upserts one user's rating into the list and recomputes the
// average as the full arithmetic mean of the post-update list. An existing
// entry is overwritten in place, keeping its position; a new user is appended.
// The mean is always recomputed from scratch since a re-rating changes the sum
// in a history-independent way.
func ApplyRating(ratings []Rating, userId string, value float64) ([]Rating, float64) {
	found := false
	for i := range ratings {
		if ratings[i].UserId == userId {
			ratings[i].Rating = value
			found = true
			break
		}
	}
	if !found {
		ratings = append(ratings, Rating{UserId: userId, Rating: value})
	}

	if len(ratings) == 0 {
		return ratings, 0
	}

	var sum float64
	for i := range ratings {
		sum += ratings[i].Rating
	}
	return ratings, sum / float64(len(ratings))
}
