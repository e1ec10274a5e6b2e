package interfaces

// Collection names used on the change feed.
const (
	CollectionQuotes   = "quotes"
	CollectionProjects = "projects"
	CollectionProducts = "products"
)

// IChangeNotifier fans out "collection changed" signals to subscribers.
//
// A subscriber channel holds at most one pending signal, so a slow consumer
// sees one wake-up for any number of writes and re-reads the latest state.
type IChangeNotifier interface {
	Notify(collection string)
	Subscribe(collection string) (signals <-chan struct{}, cancel func())
}
