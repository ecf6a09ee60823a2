package main

// scoreGuess classifies each guessed letter against the secret word.
//
// Two passes, which is what makes duplicate letters come out right:
//
//  1. Mark exact-position matches and count the remaining (non-exact)
//     secret letters.
//  2. For every non-exact position, in left-to-right guess order, mark
//     present if that letter still has availability, otherwise absent.
//
// Exact matches always consume availability before present marks, so if the
// secret has one E and the guess has two, exactly one of them is marked
// exact or present and the other absent.
//
// Both inputs must already be uppercase A-Z of equal length; the game
// session validates before calling. A length mismatch is a contract bug and
// fails with InvalidInputError.
func scoreGuess(secret, guess string) ([]LetterFeedback, error) {
	if len(guess) != len(secret) {
		return nil, &InvalidInputError{Reason: "secret and guess lengths differ"}
	}

	result := make([]LetterFeedback, len(guess))
	var remaining [26]int

	for i := 0; i < len(secret); i++ {
		if guess[i] == secret[i] {
			result[i] = LetterFeedback{Letter: string(guess[i]), Status: FeedbackExact}
		} else {
			remaining[secret[i]-'A']++
		}
	}

	for i := 0; i < len(guess); i++ {
		if result[i].Status == FeedbackExact {
			continue
		}
		j := guess[i] - 'A'
		if remaining[j] > 0 {
			result[i] = LetterFeedback{Letter: string(guess[i]), Status: FeedbackPresent}
			remaining[j]--
		} else {
			result[i] = LetterFeedback{Letter: string(guess[i]), Status: FeedbackAbsent}
		}
	}

	return result, nil
}
