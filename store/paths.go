package store

import "strings"

// splitDocPath splits "users/u1/cart/i1" into its owning collection path
// ("users/u1/cart") and document id ("i1").
func splitDocPath(docPath string) (collectionPath, id string) {
	idx := strings.LastIndex(docPath, "/")
	if idx < 0 {
		return "", docPath
	}
	return docPath[:idx], docPath[idx+1:]
}

// CartPath and friends build the persisted collection layout. The layout is
// fixed: the mobile clients read these exact paths.

func UserPath(userID string) string {
	return "users/" + userID
}

func CartPath(userID string) string {
	return "users/" + userID + "/cart"
}

func CartItemPath(userID, itemID string) string {
	return "users/" + userID + "/cart/" + itemID
}

func OrdersPath(userID string) string {
	return "users/" + userID + "/orders"
}

func OrderPath(userID, orderID string) string {
	return "users/" + userID + "/orders/" + orderID
}

const PendingOrdersPath = "pendingorders"

func PendingOrderPath(pendingID string) string {
	return PendingOrdersPath + "/" + pendingID
}
