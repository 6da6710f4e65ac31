package model

import "time"

type RoomID string

const EmptyRoomID RoomID = ""

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// MaxCriteriaGenres caps how many genres a room may filter on.
const MaxCriteriaGenres = 3

// FilterCriteria is the query shape a room's candidate pool is built from.
// It is set when the room is created and must not change once voting starts.
type FilterCriteria struct {
	RoomID    RoomID
	MediaType MediaType
	GenreIDs  []int
}

type RoomStatus string

const (
	StatusWaitingForMembers RoomStatus = "waiting_for_members"
	StatusVotingInProgress  RoomStatus = "voting_in_progress"
	StatusConsensusReached  RoomStatus = "consensus_reached"
	StatusMatched           RoomStatus = "matched"
	StatusCompletedNoMatch  RoomStatus = "completed_no_match"
)

// Room carries only the fields the matching core touches. The authoritative
// record lives in the store; a Room value is never held beyond a single
// read-modify-write.
type Room struct {
	ID              RoomID
	PublicCode      string
	Criteria        FilterCriteria
	Status          RoomStatus
	MemberCount     int
	CurrentMatchID  CandidateID
	LastPoolRefresh time.Time
}
