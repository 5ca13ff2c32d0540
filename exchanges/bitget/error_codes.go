package bitget

// errorCodes maps exchange error codes to error kinds. Codes 30xxx are
// shared, 32xxx are futures, 33xxx margin, 34xxx account, 35xxx swap and
// 36xxx option errors.
var errorCodes = map[string]ErrorKind{
	"1":     KindExchange,             // System error
	"4010":  KindPermissionDenied,     // For the security of your funds, withdrawals are not permitted within 24 hours after changing fund password  / mobile number / Google Authenticator settings
	"4001":  KindExchange,             // no data received in 30s
	"4002":  KindExchange,             // Buffer full. cannot write data
	"30001": KindAuthentication,       // request header "ACCESS_KEY" cannot be blank
	"30002": KindAuthentication,       // request header "ACCESS_SIGN" cannot be blank
	"30003": KindAuthentication,       // request header "ACCESS_TIMESTAMP" cannot be blank
	"30004": KindAuthentication,       // request header "ACCESS_PASSPHRASE" cannot be blank
	"30005": KindInvalidNonce,         // invalid ACCESS_TIMESTAMP
	"30006": KindAuthentication,       // invalid ACCESS_KEY
	"30007": KindBadRequest,           // invalid Content_Type, please use "application/json" format
	"30008": KindRequestTimeout,       // timestamp request expired
	"30009": KindExchange,             // system error
	"30010": KindAuthentication,       // API validation failed
	"30011": KindPermissionDenied,     // invalid IP
	"30012": KindAuthentication,       // invalid authorization
	"30013": KindAuthentication,       // invalid sign
	"30014": KindRateLimited,          // request too frequent
	"30015": KindAuthentication,       // request header "ACCESS_PASSPHRASE" incorrect
	"30016": KindExchange,             // you are using v1 apiKey, please use v1 endpoint. If you would like to use v3 endpoint, please subscribe to v3 apiKey
	"30017": KindExchange,             // apikey's broker id does not match
	"30018": KindExchange,             // apikey's domain does not match
	"30019": KindExchangeNotAvailable, // Api is offline or unavailable
	"30020": KindBadRequest,           // body cannot be blank
	"30021": KindBadRequest,           // Json data format error
	"30022": KindPermissionDenied,     // Api has been frozen
	"30023": KindBadRequest,           // {0} parameter cannot be blank
	"30024": KindBadSymbol,            // \"instrument_id\" is an invalid parameter
	"30025": KindBadRequest,           // {0} parameter category error
	"30026": KindRateLimited,          // requested too frequent
	"30027": KindAuthentication,       // login failure
	"30028": KindPermissionDenied,     // unauthorized execution
	"30029": KindAccountSuspended,     // account suspended
	"30030": KindExchange,             // endpoint request failed. Please try again
	"30031": KindBadRequest,           // token does not exist
	"30032": KindBadSymbol,            // pair does not exist
	"30033": KindBadRequest,           // exchange domain does not exist
	"30034": KindExchange,             // exchange ID does not exist
	"30035": KindExchange,             // trading is not supported in this website
	"30036": KindExchange,             // no relevant data
	"30037": KindExchangeNotAvailable, // endpoint is offline or unavailable
	"30038": KindOnMaintenance,
	"32001": KindAccountSuspended,  // futures account suspended
	"32002": KindPermissionDenied,  // futures account does not exist
	"32003": KindCancelPending,     // canceling, please wait
	"32004": KindExchange,          // you have no unfilled orders
	"32005": KindInvalidOrder,      // max order quantity
	"32006": KindInvalidOrder,      // the order price or trigger price exceeds USD 1 million
	"32007": KindInvalidOrder,      // leverage level must be the same for orders on the same side of the contract
	"32008": KindInvalidOrder,      // Max. positions to open (cross margin)
	"32009": KindInvalidOrder,      // Max. positions to open (fixed margin)
	"32010": KindExchange,          // leverage cannot be changed with open positions
	"32011": KindExchange,          // futures status error
	"32012": KindExchange,          // futures order update error
	"32013": KindExchange,          // token type is blank
	"32014": KindExchange,          // your number of contracts closing is larger than the number of contracts available
	"32015": KindExchange,          // margin ratio is lower than 100% before opening positions
	"32016": KindExchange,          // margin ratio is lower than 100% after opening position
	"32017": KindExchange,          // no BBO
	"32018": KindExchange,          // the order quantity is less than 1, please try again
	"32019": KindExchange,          // the order price deviates from the price of the previous minute by more than 3%
	"32020": KindExchange,          // the price is not in the range of the price limit
	"32021": KindExchange,          // leverage error
	"32022": KindExchange,          // this function is not supported in your country or region according to the regulations
	"32023": KindExchange,          // this account has outstanding loan
	"32024": KindExchange,          // order cannot be placed during delivery
	"32025": KindExchange,          // order cannot be placed during settlement
	"32026": KindExchange,          // your account is restricted from opening positions
	"32027": KindExchange,          // cancelled over 20 orders
	"32028": KindExchange,          // account is suspended and liquidated
	"32029": KindExchange,          // order info does not exist
	"32030": KindInvalidOrder,      // The order cannot be cancelled
	"32031": KindArgumentsRequired, // client_oid or order_id is required.
	"32038": KindAuthentication,    // User does not exist
	"32040": KindExchange,          // User have open contract orders or position
	"32044": KindExchange,          // The margin ratio after submitting this order is lower than the minimum requirement ({0}) for your tier.
	"32045": KindExchange,          // String of commission over 1 million
	"32046": KindExchange,          // Each user can hold up to 10 trade plans at the same time
	"32047": KindExchange,          // system error
	"32048": KindInvalidOrder,      // Order strategy track range error
	"32049": KindExchange,          // Each user can hold up to 10 track plans at the same time
	"32050": KindInvalidOrder,      // Order strategy rang error
	"32051": KindInvalidOrder,      // Order strategy ice depth error
	"32052": KindExchange,          // String of commission over 100 thousand
	"32053": KindExchange,          // Each user can hold up to 6 ice plans at the same time
	"32057": KindExchange,          // The order price is zero. Market-close-all function cannot be executed
	"32054": KindExchange,          // Trade not allow
	"32055": KindInvalidOrder,      // cancel order error
	"32056": KindExchange,          // iceberg per order average should between {0}-{1} contracts
	"32058": KindExchange,          // Each user can hold up to 6 initiative plans at the same time
	"32059": KindInvalidOrder,      // Total amount should exceed per order amount
	"32060": KindInvalidOrder,      // Order strategy type error
	"32061": KindInvalidOrder,      // Order strategy initiative limit error
	"32062": KindInvalidOrder,      // Order strategy initiative range error
	"32063": KindInvalidOrder,      // Order strategy initiative rate error
	"32064": KindExchange,          // Time Stringerval of orders should set between 5-120s
	"32065": KindExchange,          // Close amount exceeds the limit of Market-close-all (999 for BTC, and 9999 for the rest tokens)
	"32066": KindExchange,          // You have open orders. Please cancel all open orders before changing your leverage level.
	"32067": KindExchange,          // Account equity < required margin in this setting. Please adjust your leverage level again.
	"32068": KindExchange,          // The margin for this position will fall short of the required margin in this setting. Please adjust your leverage level or increase your margin to proceed.
	"32069": KindExchange,          // Target leverage level too low. Your account balance is insufficient to cover the margin required. Please adjust the leverage level again.
	"32070": KindExchange,          // Please check open position or unfilled order
	"32071": KindExchange,          // Your current liquidation mode does not support this action.
	"32072": KindExchange,          // The highest available margin for your order’s tier is {0}. Please edit your margin and place a new order.
	"32073": KindExchange,          // The action does not apply to the token
	"32074": KindExchange,          // The number of contracts of your position, open orders, and the current order has exceeded the maximum order limit of this asset.
	"32075": KindExchange,          // Account risk rate breach
	"32076": KindExchange,          // Liquidation of the holding position(s) at market price will require cancellation of all pending close orders of the contracts.
	"32077": KindExchange,          // Your margin for this asset in futures account is insufficient and the position has been taken over for liquidation. (You will not be able to place orders, close positions, transfer funds, or add margin during this period of time. Your account will be restored after the liquidation is complete.)
	"32078": KindExchange,          // Please cancel all open orders before switching the liquidation mode(Please cancel all open orders before switching the liquidation mode)
	"32079": KindExchange,          // Your open positions are at high risk.(Please add margin or reduce positions before switching the mode)
	"32080": KindExchange,          // Funds cannot be transferred out within 30 minutes after futures settlement
	"32083": KindExchange,          // The number of contracts should be a positive multiple of %%. Please place your order again
	"33001": KindPermissionDenied,  // margin account for this pair is not enabled yet
	"33002": KindAccountSuspended,  // margin account for this pair is suspended
	"33003": KindInsufficientFunds, // no loan balance
	"33004": KindExchange,          // loan amount cannot be smaller than the minimum limit
	"33005": KindExchange,          // repayment amount must exceed 0
	"33006": KindExchange,          // loan order not found
	"33007": KindExchange,          // status not found
	"33008": KindInsufficientFunds, // loan amount cannot exceed the maximum limit
	"33009": KindExchange,          // user ID is blank
	"33010": KindExchange,          // you cannot cancel an order during session 2 of call auction
	"33011": KindExchange,          // no new market data
	"33012": KindExchange,          // order cancellation failed
	"33013": KindInvalidOrder,      // order placement failed
	"33014": KindOrderNotFound,     // order does not exist
	"33015": KindInvalidOrder,      // exceeded maximum limit
	"33016": KindExchange,          // margin trading is not open for this token
	"33017": KindInsufficientFunds, // insufficient balance
	"33018": KindExchange,          // this parameter must be smaller than 1
	"33020": KindExchange,          // request not supported
	"33021": KindBadRequest,        // token and the pair do not match
	"33022": KindInvalidOrder,      // pair and the order do not match
	"33023": KindExchange,          // you can only place market orders during call auction
	"33024": KindInvalidOrder,      // trading amount too small
	"33025": KindInvalidOrder,      // base token amount is blank
	"33026": KindExchange,          // transaction completed
	"33027": KindInvalidOrder,      // cancelled order or order cancelling
	"33028": KindInvalidOrder,      // the decimal places of the trading price exceeded the limit
	"33029": KindInvalidOrder,      // the decimal places of the trading size exceeded the limit
	"33034": KindExchange,          // You can only place limit order after Call Auction has started
	"33035": KindExchange,          // This type of order cannot be canceled(This type of order cannot be canceled)
	"33036": KindExchange,          // Exceeding the limit of entrust order
	"33037": KindExchange,          // The buy order price should be lower than 130% of the trigger price
	"33038": KindExchange,          // The sell order price should be higher than 70% of the trigger price
	"33039": KindExchange,          // The limit of callback rate is 0 < x <= 5%
	"33040": KindExchange,          // The trigger price of a buy order should be lower than the latest transaction price
	"33041": KindExchange,          // The trigger price of a sell order should be higher than the latest transaction price
	"33042": KindExchange,          // The limit of price variance is 0 < x <= 1%
	"33043": KindExchange,          // The total amount must be larger than 0
	"33044": KindExchange,          // The average amount should be 1/1000 * total amount <= x <= total amount
	"33045": KindExchange,          // The price should not be 0, including trigger price, order price, and price limit
	"33046": KindExchange,          // Price variance should be 0 < x <= 1%
	"33047": KindExchange,          // Sweep ratio should be 0 < x <= 100%
	"33048": KindExchange,          // Per order limit: Total amount/1000 < x <= Total amount
	"33049": KindExchange,          // Total amount should be X > 0
	"33050": KindExchange,          // Time interval should be 5 <= x <= 120s
	"33051": KindExchange,          // cancel order number not higher limit: plan and track entrust no more than 10, ice and time entrust no more than 6
	"33059": KindBadRequest,        // client_oid or order_id is required
	"33060": KindBadRequest,        // Only fill in either parameter client_oid or order_id
	"33061": KindExchange,          // Value of a single market price order cannot exceed 100,000 USD
	"33062": KindExchange,          // The leverage ratio is too high. The borrowed position has exceeded the maximum position of this leverage ratio. Please readjust the leverage ratio
	"33063": KindExchange,          // Leverage multiple is too low, there is insufficient margin in the account, please readjust the leverage ratio
	"33064": KindExchange,          // The setting of the leverage ratio cannot be less than 2, please readjust the leverage ratio
	"33065": KindExchange,          // Leverage ratio exceeds maximum leverage ratio, please readjust leverage ratio
	"21009": KindExchange,          // Funds cannot be transferred out within 30 minutes after swap settlement(Funds cannot be transferred out within 30 minutes after swap settlement)
	"34001": KindPermissionDenied,  // withdrawal suspended
	"34002": KindInvalidAddress,    // please add a withdrawal address
	"34003": KindExchange,          // sorry, this token cannot be withdrawn to xx at the moment
	"34004": KindExchange,          // withdrawal fee is smaller than minimum limit
	"34005": KindExchange,          // withdrawal fee exceeds the maximum limit
	"34006": KindExchange,          // withdrawal amount is lower than the minimum limit
	"34007": KindExchange,          // withdrawal amount exceeds the maximum limit
	"34008": KindInsufficientFunds, // insufficient balance
	"34009": KindExchange,          // your withdrawal amount exceeds the daily limit
	"34010": KindExchange,          // transfer amount must be larger than 0
	"34011": KindExchange,          // conditions not met
	"34012": KindExchange,          // the minimum withdrawal amount for NEO is 1, and the amount must be an integer
	"34013": KindExchange,          // please transfer
	"34014": KindExchange,          // transfer limited
	"34015": KindExchange,          // subaccount does not exist
	"34016": KindPermissionDenied,  // transfer suspended
	"34017": KindAccountSuspended,  // account suspended
	"34018": KindAuthentication,    // incorrect trades password
	"34019": KindPermissionDenied,  // please bind your email before withdrawal
	"34020": KindPermissionDenied,  // please bind your funds password before withdrawal
	"34021": KindInvalidAddress,    // Not verified address
	"34022": KindExchange,          // Withdrawals are not available for sub accounts
	"34023": KindPermissionDenied,  // Please enable futures trading before transferring your funds
	"34026": KindExchange,          // transfer too frequently(transfer too frequently)
	"34036": KindExchange,          // Parameter is incorrect, please refer to API documentation
	"34037": KindExchange,          // Get the sub-account balance interface, account type is not supported
	"34038": KindExchange,          // Since your C2C transaction is unusual, you are restricted from fund transfer. Please contact our customer support to cancel the restriction
	"34039": KindExchange,          // You are now restricted from transferring out your funds due to abnormal trades on C2C Market. Please transfer your fund on our website or app instead to verify your identity
	"35001": KindExchange,          // Contract does not exist
	"35002": KindExchange,          // Contract settling
	"35003": KindExchange,          // Contract paused
	"35004": KindExchange,          // Contract pending settlement
	"35005": KindAuthentication,    // User does not exist
	"35008": KindInvalidOrder,      // Risk ratio too high
	"35010": KindInvalidOrder,      // Position closing too large
	"35012": KindInvalidOrder,      // Incorrect order size
	"35014": KindInvalidOrder,      // Order price is not within limit
	"35015": KindInvalidOrder,      // Invalid leverage level
	"35017": KindExchange,          // Open orders exist
	"35019": KindInvalidOrder,      // Order size too large
	"35020": KindInvalidOrder,      // Order price too high
	"35021": KindInvalidOrder,      // Order size exceeded current tier limit
	"35022": KindExchange,          // Contract status error
	"35024": KindExchange,          // Contract not initialized
	"35025": KindInsufficientFunds, // No account balance
	"35026": KindExchange,          // Contract settings not initialized
	"35029": KindOrderNotFound,     // Order does not exist
	"35030": KindInvalidOrder,      // Order size too large
	"35031": KindInvalidOrder,      // Cancel order size too large
	"35032": KindExchange,          // Invalid user status
	"35037": KindExchange,          // No last traded price in cache
	"35039": KindExchange,          // Open order quantity exceeds limit
	"35040": KindInvalidOrder,
	"35044": KindExchange,          // Invalid order status
	"35046": KindInsufficientFunds, // Negative account balance
	"35047": KindInsufficientFunds, // Insufficient account balance
	"35048": KindExchange,          // User contract is frozen and liquidating
	"35049": KindInvalidOrder,      // Invalid order type
	"35050": KindInvalidOrder,      // Position settings are blank
	"35052": KindInsufficientFunds, // Insufficient cross margin
	"35053": KindExchange,          // Account risk too high
	"35055": KindInsufficientFunds, // Insufficient account balance
	"35057": KindExchange,          // No last traded price
	"35058": KindExchange,          // No limit
	"35059": KindBadRequest,        // client_oid or order_id is required
	"35060": KindBadRequest,        // Only fill in either parameter client_oid or order_id
	"35061": KindBadRequest,        // Invalid instrument_id
	"35062": KindInvalidOrder,      // Invalid match_price
	"35063": KindInvalidOrder,      // Invalid order_size
	"35064": KindInvalidOrder,      // Invalid client_oid
	"35066": KindInvalidOrder,      // Order interval error
	"35067": KindInvalidOrder,      // Time-weighted order ratio error
	"35068": KindInvalidOrder,      // Time-weighted order range error
	"35069": KindInvalidOrder,      // Time-weighted single transaction limit error
	"35070": KindInvalidOrder,      // Algo order type error
	"35071": KindInvalidOrder,      // Order total must be larger than single order limit
	"35072": KindInvalidOrder,      // Maximum 6 unfulfilled time-weighted orders can be held at the same time
	"35073": KindInvalidOrder,      // Order price is 0. Market-close-all not available
	"35074": KindInvalidOrder,      // Iceberg order single transaction average error
	"35075": KindInvalidOrder,      // Failed to cancel order
	"35076": KindInvalidOrder,      // LTC 20x leverage. Not allowed to open position
	"35077": KindInvalidOrder,      // Maximum 6 unfulfilled iceberg orders can be held at the same time
	"35078": KindInvalidOrder,      // Order amount exceeded 100,000
	"35079": KindInvalidOrder,      // Iceberg order price variance error
	"35080": KindInvalidOrder,      // Callback rate error
	"35081": KindInvalidOrder,      // Maximum 10 unfulfilled trail orders can be held at the same time
	"35082": KindInvalidOrder,      // Trail order callback rate error
	"35083": KindInvalidOrder,      // Each user can only hold a maximum of 10 unfulfilled stop-limit orders at the same time
	"35084": KindInvalidOrder,      // Order amount exceeded 1 million
	"35085": KindInvalidOrder,      // Order amount is not in the correct range
	"35086": KindInvalidOrder,      // Price exceeds 100 thousand
	"35087": KindInvalidOrder,      // Price exceeds 100 thousand
	"35088": KindInvalidOrder,      // Average amount error
	"35089": KindInvalidOrder,      // Price exceeds 100 thousand
	"35090": KindExchange,          // No stop-limit orders available for cancelation
	"35091": KindExchange,          // No trail orders available for cancellation
	"35092": KindExchange,          // No iceberg orders available for cancellation
	"35093": KindExchange,          // No trail orders available for cancellation
	"35094": KindExchange,          // Stop-limit order last traded price error
	"35095": KindBadRequest,        // Instrument_id error
	"35096": KindExchange,          // Algo order status error
	"35097": KindExchange,          // Order status and order ID cannot exist at the same time
	"35098": KindExchange,          // An order status or order ID must exist
	"35099": KindExchange,          // Algo order ID error
	"36001": KindBadRequest,        // Invalid underlying index.
	"36002": KindBadRequest,        // Instrument does not exist.
	"36005": KindExchange,          // Instrument status is invalid.
	"36101": KindAuthentication,    // Account does not exist.
	"36102": KindPermissionDenied,  // Account status is invalid.
	"36103": KindPermissionDenied,  // Account is suspended due to ongoing liquidation.
	"36104": KindPermissionDenied,  // Account is not enabled for options trading.
	"36105": KindPermissionDenied,  // Please enable the account for option contract.
	"36106": KindPermissionDenied,  // Funds cannot be transferred in or out, as account is suspended.
	"36107": KindPermissionDenied,  // Funds cannot be transferred out within 30 minutes after option exercising or settlement.
	"36108": KindInsufficientFunds, // Funds cannot be transferred in or out, as equity of the account is less than zero.
	"36109": KindPermissionDenied,  // Funds cannot be transferred in or out during option exercising or settlement.
	"36201": KindPermissionDenied,  // New order function is blocked.
	"36202": KindPermissionDenied,  // Account does not have permission to short option.
	"36203": KindInvalidOrder,      // Invalid format for client_oid.
	"36204": KindExchange,          // Invalid format for request_id.
	"36205": KindBadRequest,        // Instrument id does not match underlying index.
	"36206": KindBadRequest,        // Order_id and client_oid can not be used at the same time.
	"36207": KindInvalidOrder,      // Either order price or fartouch price must be present.
	"36208": KindInvalidOrder,      // Either order price or size must be present.
	"36209": KindInvalidOrder,      // Either order_id or client_oid must be present.
	"36210": KindInvalidOrder,      // Either order_ids or client_oids must be present.
	"36211": KindInvalidOrder,      // Exceeding max batch size for order submission.
	"36212": KindInvalidOrder,      // Exceeding max batch size for oder cancellation.
	"36213": KindInvalidOrder,      // Exceeding max batch size for order amendment.
	"36214": KindExchange,          // Instrument does not have valid bid/ask quote.
	"36216": KindOrderNotFound,     // Order does not exist.
	"36217": KindInvalidOrder,      // Order submission failed.
	"36218": KindInvalidOrder,      // Order cancellation failed.
	"36219": KindInvalidOrder,      // Order amendment failed.
	"36220": KindInvalidOrder,      // Order is pending cancel.
	"36221": KindInvalidOrder,      // Order qty is not valid multiple of lot size.
	"36222": KindInvalidOrder,      // Order price is breaching highest buy limit.
	"36223": KindInvalidOrder,      // Order price is breaching lowest sell limit.
	"36224": KindInvalidOrder,      // Exceeding max order size.
	"36225": KindInvalidOrder,      // Exceeding max open order count for instrument.
	"36226": KindInvalidOrder,      // Exceeding max open order count for underlying.
	"36227": KindInvalidOrder,      // Exceeding max open size across all orders for underlying
	"36228": KindInvalidOrder,      // Exceeding max available qty for instrument.
	"36229": KindInvalidOrder,      // Exceeding max available qty for underlying.
	"36230": KindInvalidOrder,      // Exceeding max position limit for underlying.
}

// errorMessages maps exact error messages to error kinds, messages take
// precedence over codes
var errorMessages = map[string]ErrorKind{
	"failure to get a peer from the ring-balancer": KindExchangeNotAvailable,
}
