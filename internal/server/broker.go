package server

// Broker fans every published message out to the current subscribers.
type Broker struct {
	stopCh    chan struct{}
	publishCh chan interface{}
	subCh     chan chan interface{}
	unsubCh   chan chan interface{}
	countCh   chan chan int
}

func newBroker() *Broker {
	return &Broker{
		stopCh:    make(chan struct{}),
		publishCh: make(chan interface{}, 1),
		subCh:     make(chan chan interface{}),
		unsubCh:   make(chan chan interface{}),
		countCh:   make(chan chan int),
	}
}

func (b *Broker) Start() {
	subs := map[chan interface{}]struct{}{}
	for {
		select {
		case <-b.stopCh:
			for msgCh := range subs {
				close(msgCh)
			}
			return
		case msgCh := <-b.subCh:
			subs[msgCh] = struct{}{}
		case msgCh := <-b.unsubCh:
			delete(subs, msgCh)
		case replyCh := <-b.countCh:
			replyCh <- len(subs)
		case msg := <-b.publishCh:
			for msgCh := range subs {
				// msgCh is buffered, a slow subscriber misses the message
				select {
				case msgCh <- msg:
				default:
				}
			}
		}
	}
}

func (b *Broker) Stop() {
	close(b.stopCh)
}

func (b *Broker) Subscribe() chan interface{} {
	msgCh := make(chan interface{}, 1)
	b.subCh <- msgCh
	return msgCh
}

func (b *Broker) Unsubscribe(msgCh chan interface{}) {
	b.unsubCh <- msgCh
}

func (b *Broker) Publish(msg interface{}) {
	b.publishCh <- msg
}

// Subscribers returns the number of current subscribers.
func (b *Broker) Subscribers() int {
	replyCh := make(chan int, 1)
	b.countCh <- replyCh
	return <-replyCh
}
