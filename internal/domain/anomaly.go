package domain

// AnomalyFlags collects the suspicious patterns found in a batch.
// SynchronizedClusters holds one representative raw timestamp string per
// detected cluster, de-duplicated, in order of first detection.
type AnomalyFlags struct {
	BurstUsers           []string `json:"burst_users"`
	AlternatingUsers     []string `json:"alternating_users"`
	SynchronizedClusters []string `json:"synchronized_clusters"`
}
