package server

// MaxRequestBodyBytes caps request bodies at 1MB. Trade batches are the
// largest payloads and stay well below this.
const MaxRequestBodyBytes int64 = 1 << 20
