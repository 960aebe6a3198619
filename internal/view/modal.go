package view

import (
	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

type Modal string

const (
	ModalBills         Modal = "bills"
	ModalTransactions  Modal = "transactions"
	ModalActiveWorkers Modal = "active_workers"
	ModalAddWorker     Modal = "add_worker"
	ModalWorkerBills   Modal = "worker_bills"
)

// ModalController keeps one open/closed flag per modal kind a view supports.
// Modals never hold entity state; they read from the view that owns them.
type ModalController struct {
	open map[Modal]bool
}

func NewModalController(kinds ...Modal) *ModalController {
	open := make(map[Modal]bool, len(kinds))
	for _, k := range kinds {
		open[k] = false
	}
	return &ModalController{open: open}
}

func (c *ModalController) Open(m Modal) error {
	return c.set(m, true)
}

func (c *ModalController) Close(m Modal) error {
	return c.set(m, false)
}

func (c *ModalController) set(m Modal, open bool) error {
	if _, ok := c.open[m]; !ok {
		return apperrors.ErrUnknownModal
	}
	c.open[m] = open
	return nil
}

func (c *ModalController) IsOpen(m Modal) bool {
	return c.open[m]
}

func (c *ModalController) Snapshot() map[Modal]bool {
	out := make(map[Modal]bool, len(c.open))
	for k, v := range c.open {
		out[k] = v
	}
	return out
}
