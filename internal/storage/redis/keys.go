package redis

// The whole game is one JSON document under a fixed key. There is a
// single live game per deployment, so no per-game keying is needed.
const gameKey = "pokernight:game"
