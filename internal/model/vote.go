package model

import "time"

type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
	VoteSkip    VoteType = "skip"
)

func (v VoteType) Valid() bool {
	return v == VoteLike || v == VoteDislike || v == VoteSkip
}

// VoteMutation is one vote-count change delivered by the notification
// source. Delivery is at-least-once with no ordering guarantee.
type VoteMutation struct {
	RoomID       RoomID
	CandidateID  CandidateID
	YesVoteCount int
}

// MatchInfo describes the item a room agreed on.
type MatchInfo struct {
	RoomID       RoomID
	CandidateID  CandidateID
	Title        string
	Participants []string
	ReachedAt    time.Time
}

// ConsensusOutcome is the result of evaluating one vote mutation.
// Losing the transition race is an expected outcome, not an error:
// exactly one of Matched / AlreadyMatched is set when agreement exists,
// neither when consensus is still pending.
type ConsensusOutcome struct {
	Matched        bool
	Match          *MatchInfo
	AlreadyMatched *MatchInfo
}

// Pending reports that no agreement has been recorded yet.
func (o ConsensusOutcome) Pending() bool {
	return !o.Matched && o.AlreadyMatched == nil
}
